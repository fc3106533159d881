package factorial

import (
	"errors"
	"testing"

	"github.com/oisee/bignum/pkg/bnerr"
	"github.com/oisee/bignum/pkg/storage"
)

func TestBitOffsetMatchesRecurrence(t *testing.T) {
	// B(i) must equal the running sum of widths of positions 0..i-1.
	var want uint64
	for i := uint64(0); i <= 200; i++ {
		if got := bitOffset(i); got != want {
			t.Fatalf("bitOffset(%d) = %d, want %d", i, got, want)
		}
		want += uint64(coeffWidth(i))
	}
}

func TestCoeffWidth(t *testing.T) {
	tests := []struct {
		index uint64
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
	}
	for _, tt := range tests {
		if got := coeffWidth(tt.index); got != tt.want {
			t.Errorf("coeffWidth(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestPutExtractRoundTrip(t *testing.T) {
	s := storage.Zero()
	const K = 100
	values := make([]uint64, K+1)
	for i := uint64(0); i <= K; i++ {
		v := i / 2 // stays within the 0..index bound
		values[i] = v
		if err := Put(&s, i, v); err != nil {
			t.Fatalf("Put(%d, %d) returned error: %v", i, v, err)
		}
	}
	for i := uint64(0); i <= K; i++ {
		got, present, err := Extract(s, i)
		if err != nil {
			t.Fatalf("Extract(%d) returned error: %v", i, err)
		}
		if !present {
			t.Fatalf("Extract(%d) reported absent after Put", i)
		}
		if got != values[i] {
			t.Errorf("Extract(%d) = %d, want %d", i, got, values[i])
		}
	}
}

func TestPutInvalidCoefficient(t *testing.T) {
	s := storage.Zero()
	if err := Put(&s, 3, 4); !errors.Is(err, bnerr.ErrInvalidCoefficient) {
		t.Errorf("Put(3, 4) error = %v, want ErrInvalidCoefficient", err)
	}
	if err := Put(&s, 3, 3); err != nil {
		t.Errorf("Put(3, 3) returned error: %v", err)
	}
}

func TestPutOutOfRange(t *testing.T) {
	s := storage.Zero()
	if err := Put(&s, MaxIndex+1, 0); !errors.Is(err, bnerr.ErrOutOfRange) {
		t.Errorf("Put(MaxIndex+1, 0) error = %v, want ErrOutOfRange", err)
	}
	if _, _, err := Extract(s, MaxIndex+1); !errors.Is(err, bnerr.ErrOutOfRange) {
		t.Errorf("Extract(MaxIndex+1) error = %v, want ErrOutOfRange", err)
	}
}

func TestExtractAbsentBeyondBitLength(t *testing.T) {
	s := storage.Zero()
	_, present, err := Extract(s, 50)
	if err != nil {
		t.Fatalf("Extract(50) returned error: %v", err)
	}
	if present {
		t.Error("Extract(50) on empty storage should report absent")
	}
}

func TestPutDoesNotDisturbNeighbors(t *testing.T) {
	s := storage.Zero()
	if err := Put(&s, 5, 5); err != nil {
		t.Fatalf("Put(5, 5): %v", err)
	}
	if err := Put(&s, 6, 0); err != nil {
		t.Fatalf("Put(6, 0): %v", err)
	}
	if err := Put(&s, 4, 0); err != nil {
		t.Fatalf("Put(4, 0): %v", err)
	}
	got, present, err := Extract(s, 5)
	if err != nil || !present {
		t.Fatalf("Extract(5): present=%v err=%v", present, err)
	}
	if got != 5 {
		t.Errorf("Extract(5) = %d, want 5 (neighboring Put calls disturbed it)", got)
	}
}
