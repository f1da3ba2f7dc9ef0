package writer

import "testing"

func Test_CaptureStreamerDrains(t *testing.T) {
	cs := &CaptureStreamer{
		Data: [][2]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}},
	}

	buf := make([][2]float64, 2)
	n, ok := cs.Stream(buf)
	if n != 2 || !ok {
		t.Fatalf("First Stream: n=%d ok=%t", n, ok)
	}
	if buf[0] != cs.Data[0] || buf[1] != cs.Data[1] {
		t.Errorf("First Stream copied wrong frames: %v", buf)
	}

	n, ok = cs.Stream(buf)
	if n != 1 || ok {
		t.Fatalf("Second Stream: n=%d ok=%t, expected n=1 ok=false", n, ok)
	}
	if buf[0] != cs.Data[2] {
		t.Errorf("Second Stream copied wrong frame: %v", buf[0])
	}
}
