package arena

import "testing"

func TestAllocReturnsDistinctRegions(t *testing.T) {
	a := New()
	x := a.Alloc(8, 1)
	y := a.Alloc(8, 1)
	for i := range x {
		x[i] = 0xAA
	}
	for i := range y {
		y[i] = 0xBB
	}
	for i, v := range x {
		if v != 0xAA {
			t.Fatalf("x[%d] = %x, overwritten by y's allocation", i, v)
		}
	}
}

func TestAllocSpillsToNewBlock(t *testing.T) {
	a := New()
	// First allocation larger than defaultBlockSize forces a dedicated
	// block; a second ordinary allocation must still succeed afterward.
	big := a.Alloc(defaultBlockSize+1, 1)
	if len(big) != defaultBlockSize+1 {
		t.Fatalf("len(big) = %d, want %d", len(big), defaultBlockSize+1)
	}
	small := a.Alloc(16, 1)
	if len(small) != 16 {
		t.Fatalf("len(small) = %d, want 16", len(small))
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, align, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{5, 1, 5},
		{5, 0, 5},
	}
	for _, c := range cases {
		if got := alignUp(c.n, c.align); got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.n, c.align, got, c.want)
		}
	}
}

func TestResetKeepsFirstBlockOnly(t *testing.T) {
	a := New()
	a.Alloc(defaultBlockSize+1, 1) // force a second block
	if len(a.blocks) < 2 {
		t.Fatal("expected allocation to spill into a second block")
	}
	a.Reset()
	if len(a.blocks) != 1 {
		t.Fatalf("len(a.blocks) after Reset = %d, want 1", len(a.blocks))
	}
	if a.Bytes() != 0 {
		t.Fatalf("Bytes() after Reset = %d, want 0", a.Bytes())
	}
}

func TestDestroyDropsAllBlocks(t *testing.T) {
	a := New()
	a.Destroy()
	if a.blocks != nil {
		t.Fatal("expected Destroy to nil out blocks")
	}
}

func TestBytesTracksAllocations(t *testing.T) {
	a := New()
	if a.Bytes() != 0 {
		t.Fatalf("Bytes() on fresh arena = %d, want 0", a.Bytes())
	}
	a.Alloc(10, 1)
	a.Alloc(20, 1)
	if got := a.Bytes(); got < 30 {
		t.Fatalf("Bytes() = %d, want at least 30", got)
	}
}
