package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fixed mgl64.Mat4

func (f fixed) Matrix() mgl64.Mat4 { return mgl64.Mat4(f) }

func TestDrawListAddRemove(t *testing.T) {
	d := NewDrawList()
	p := fixed(mgl64.Ident4())

	a := d.Add(p, "Bubble")
	b := d.Add(p, "Bullet")
	c := d.Add(p, "Bubble")

	if a == 0 || a == b || b == c {
		t.Fatalf("handles should be distinct and non-zero, got %d %d %d", a, b, c)
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}

	if !d.Remove(b) {
		t.Error("Remove() of a live handle returned false")
	}
	if d.Remove(b) {
		t.Error("Remove() of a removed handle returned true")
	}
	if d.Remove(Handle(42)) {
		t.Error("Remove() of an unknown handle returned true")
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}

	if _, ok := d.Get(b); ok {
		t.Error("Get() found a removed handle")
	}
	got, ok := d.Get(c)
	if !ok || got.Mesh != "Bubble" || got.Handle != c {
		t.Errorf("Get(%d) = %+v, %v", c, got, ok)
	}
}

func TestDrawListOrder(t *testing.T) {
	d := NewDrawList()
	p := fixed(mgl64.Ident4())

	handles := make([]Handle, 0, 5)
	for range 5 {
		handles = append(handles, d.Add(p, "Bubble"))
	}
	d.Remove(handles[1])
	d.Remove(handles[3])
	handles = append(handles, d.Add(p, "Bullet"))

	want := []Handle{handles[0], handles[2], handles[4], handles[5]}
	var got []Handle
	d.Each(func(e Drawable) {
		got = append(got, e.Handle)
	})

	if len(got) != len(want) {
		t.Fatalf("Each() visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each() visited %v, want %v", got, want)
			break
		}
	}
}
