package intervalmap_test

import (
	"math/rand"
	"testing"

	"github.com/akmistry/intervalmap"
	"github.com/akmistry/intervalmap/internal/testutil"
)

func testRandomAssign(t *testing.T, m intervalmap.Map[uint8, int], model *testutil.Model[int]) {
	const Iterations = 2000
	const NumValues = 4

	for i := 0; i < Iterations; i++ {
		begin, end := testutil.RandomRange()
		value := rand.Intn(NumValues)

		before := model.Clone()
		m.Assign(begin, end, value)
		model.Assign(begin, end, value)

		// Only keys inside [begin, end) may change.
		changed := before.Changed(model)
		for k, ok := changed.NextSet(0); ok; k, ok = changed.NextSet(k + 1) {
			if k < uint(begin) || k >= uint(end) {
				t.Fatalf("Assign(%d, %d, %d) changed key %d", begin, end, value, k)
			}
		}

		testutil.CheckMap(t, m, model)
		if t.Failed() {
			t.Fatalf("mismatch after Assign(%d, %d, %d)", begin, end, value)
		}
	}

	for i := 0; i < 20; i++ {
		testutil.CheckIterate(t, m, model, uint8(rand.Intn(256)))
	}
	testutil.CheckIterate(t, m, model, 0)
	testutil.CheckIterate(t, m, model, 255)
}

func TestIntervalMap_RandomAssign(t *testing.T) {
	m := intervalmap.New[uint8](0)
	testRandomAssign(t, m, testutil.NewModel(0))
	if err := m.Check(); err != nil {
		t.Errorf("Check() error %v", err)
	}
}

func TestLockedMap_RandomAssign(t *testing.T) {
	m := intervalmap.NewLocked(intervalmap.New[uint8](0))
	testRandomAssign(t, m, testutil.NewModel(0))
}

func TestIntervalMap_WriteThenRead(t *testing.T) {
	for i := 0; i < 500; i++ {
		m := intervalmap.New[uint8](rand.Intn(3))
		model := testutil.NewModel(m.Get(0))
		for j := 0; j < 10; j++ {
			begin, end := testutil.RandomRange()
			value := rand.Intn(3)
			m.Assign(begin, end, value)
			model.Assign(begin, end, value)
		}

		begin, end := testutil.RandomRange()
		m.Assign(begin, end, 7)
		for k := int(begin); k < int(end); k++ {
			if v := m.Get(uint8(k)); v != 7 {
				t.Fatalf("Get(%d) %d != 7 after Assign(%d, %d, 7)", k, v, begin, end)
			}
		}
		for k := 0; k < 256; k++ {
			if k >= int(begin) && k < int(end) {
				continue
			}
			if v, exp := m.Get(uint8(k)), model.Get(uint8(k)); v != exp {
				t.Fatalf("Get(%d) %d != %d outside Assign(%d, %d, 7)", k, v, exp, begin, end)
			}
		}
	}
}

func TestIntervalMap_CloneRandom(t *testing.T) {
	m := intervalmap.New[uint8](0)
	model := testutil.NewModel(0)
	for i := 0; i < 100; i++ {
		begin, end := testutil.RandomRange()
		value := rand.Intn(5)
		m.Assign(begin, end, value)
		model.Assign(begin, end, value)
	}

	c := m.Clone()
	cloneModel := model.Clone()
	for i := 0; i < 100; i++ {
		begin, end := testutil.RandomRange()
		value := rand.Intn(5)
		c.Assign(begin, end, value)
		cloneModel.Assign(begin, end, value)
	}

	testutil.CheckMap[int](t, m, model)
	testutil.CheckMap[int](t, c, cloneModel)
}
