package seq_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/unbound-force/stride/internal/seq"
)

// TestGenerate_Basic verifies the fixed progression: element i is 3*i.
func TestGenerate_Basic(t *testing.T) {
	got, err := seq.Generate(5)
	if err != nil {
		t.Fatalf("Generate(5) failed: %v", err)
	}
	want := []int{0, 3, 6, 9, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate(5) = %v, want %v", got, want)
	}
}

// TestGenerate_Zero verifies that a zero count is an empty sequence,
// not an error.
func TestGenerate_Zero(t *testing.T) {
	got, err := seq.Generate(0)
	if err != nil {
		t.Fatalf("Generate(0) failed: %v", err)
	}
	if got == nil {
		t.Fatal("Generate(0) returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Generate(0) has %d elements, want 0", len(got))
	}
}

// TestGenerate_NegativeCount verifies that a negative count is
// rejected with ErrNegativeCount rather than clamped.
func TestGenerate_NegativeCount(t *testing.T) {
	got, err := seq.Generate(-1)
	if err == nil {
		t.Fatal("Generate(-1) succeeded, want error")
	}
	if !errors.Is(err, seq.ErrNegativeCount) {
		t.Errorf("Generate(-1) error = %v, want ErrNegativeCount", err)
	}
	if got != nil {
		t.Errorf("Generate(-1) returned %v, want nil", got)
	}
}

// TestGenerate_LengthAndElements checks len(Generate(n)) == n and
// element i == 3*i across a range of counts.
func TestGenerate_LengthAndElements(t *testing.T) {
	for n := 0; n <= 100; n++ {
		got, err := seq.Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("len(Generate(%d)) = %d, want %d", n, len(got), n)
		}
		for i, v := range got {
			if v != 3*i {
				t.Fatalf("Generate(%d)[%d] = %d, want %d", n, i, v, 3*i)
			}
		}
	}
}

// TestGenerate_FreshStorage verifies that successive calls return
// equal but independent slices (caller-owned results).
func TestGenerate_FreshStorage(t *testing.T) {
	a, err := seq.Generate(4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := seq.Generate(4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated Generate(4) disagree: %v vs %v", a, b)
	}

	a[0] = 999
	if b[0] == 999 {
		t.Error("mutating one result leaked into the other")
	}
}

func TestGenerateStride_CustomStep(t *testing.T) {
	got, err := seq.GenerateStride(4, 5)
	if err != nil {
		t.Fatalf("GenerateStride(4, 5) failed: %v", err)
	}
	want := []int{0, 5, 10, 15}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateStride(4, 5) = %v, want %v", got, want)
	}
}

func TestSum_Empty(t *testing.T) {
	if got := seq.Sum([]int{}); got != 0 {
		t.Errorf("Sum([]) = %d, want 0", got)
	}
	if got := seq.Sum[int](nil); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}

func TestSum_Single(t *testing.T) {
	if got := seq.Sum([]int{42}); got != 42 {
		t.Errorf("Sum([42]) = %d, want 42", got)
	}
}

func TestSum_Basic(t *testing.T) {
	if got := seq.Sum([]int{0, 3, 6, 9, 12}); got != 30 {
		t.Errorf("Sum([0 3 6 9 12]) = %d, want 30", got)
	}
}

// TestSum_ArithmeticSeries checks the closed form on a generated
// sequence: sum(Generate(50)) = 3 * 49*50/2 = 3675.
func TestSum_ArithmeticSeries(t *testing.T) {
	values, err := seq.Generate(50)
	if err != nil {
		t.Fatal(err)
	}
	if got := seq.Sum(values); got != 3675 {
		t.Errorf("Sum(Generate(50)) = %d, want 3675", got)
	}
}

// TestSum_WideAccumulator verifies that the accumulator is wider than
// the element type: summing int32 values near the int32 ceiling must
// not wrap.
func TestSum_WideAccumulator(t *testing.T) {
	values := []int32{2147483647, 2147483647}
	if got := seq.Sum(values); got != 4294967294 {
		t.Errorf("Sum overflowed: got %d, want 4294967294", got)
	}
}

// TestSum_Deterministic verifies the pure-function property: repeated
// calls over the same input agree.
func TestSum_Deterministic(t *testing.T) {
	values, err := seq.Generate(17)
	if err != nil {
		t.Fatal(err)
	}
	first := seq.Sum(values)
	for i := 0; i < 5; i++ {
		if got := seq.Sum(values); got != first {
			t.Fatalf("Sum run %d = %d, want %d", i, got, first)
		}
	}
}
