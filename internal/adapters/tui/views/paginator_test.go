package views

import "testing"

func TestPaginatorCursorMovesPages(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	for i := 0; i < 10; i++ {
		p.CursorDown()
	}
	if p.CurrentPage() != 2 {
		t.Errorf("page after 10 downs = %d, want 2", p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 10 || end != 20 {
		t.Errorf("visible range = [%d, %d), want [10, 20)", start, end)
	}
}

func TestPaginatorTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{45, 20, 3},
	}
	for _, tt := range tests {
		p := NewPaginator(tt.size)
		p.SetTotal(tt.total)
		if got := p.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(%d items, %d per page) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestPaginatorNextPrevPage(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	if !p.NextPage() || p.CurrentPage() != 2 {
		t.Fatalf("NextPage failed, page = %d", p.CurrentPage())
	}
	if !p.NextPage() || p.CurrentPage() != 3 {
		t.Fatalf("second NextPage failed, page = %d", p.CurrentPage())
	}
	if p.NextPage() {
		t.Error("NextPage past last page succeeded")
	}
	if !p.PrevPage() || p.CurrentPage() != 2 {
		t.Errorf("PrevPage failed, page = %d", p.CurrentPage())
	}
}

func TestPaginatorRemoveAtCursorClampsToEnd(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(3)
	p.CursorDown()
	p.CursorDown()

	if got := p.RemoveAtCursor(); got != 1 {
		t.Errorf("cursor after removing last item = %d, want 1", got)
	}
}

func TestPaginatorSetTotalClampsCursor(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)
	for i := 0; i < 24; i++ {
		p.CursorDown()
	}
	p.SetTotal(5)
	if p.Cursor() != 4 {
		t.Errorf("cursor after shrink = %d, want 4", p.Cursor())
	}
	if p.CurrentPage() != 1 {
		t.Errorf("page after shrink = %d, want 1", p.CurrentPage())
	}
}
