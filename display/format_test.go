package display

import "testing"

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 mins"},
		{59, "0 mins"},
		{119, "1 mins"},
		{3600, "1 hours, 0 mins"},
		{3661, "1 hours, 1 mins"},
		{86400, "1 days, 0 hours, 0 mins"},
		{90000, "1 days, 1 hours, 0 mins"},
		{3*86400 + 5*3600 + 30*60 + 59, "3 days, 5 hours, 30 mins"},
	}
	for _, tc := range tests {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Errorf("FormatUptime(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMemory(t *testing.T) {
	got := FormatMemory(1572864000, 17179869184)
	want := "1500 MiB / 16384 MiB (9%)"
	if got != want {
		t.Fatalf("FormatMemory = %q; want %q", got, want)
	}
	if got := FormatMemory(0, 0); got != "0 MiB / 0 MiB (0%)" {
		t.Fatalf("FormatMemory zero = %q", got)
	}
}

func TestFormatDisk(t *testing.T) {
	got := FormatDisk(50*gib+gib/2, 100*gib)
	want := "50 GiB / 100 GiB (50%)"
	if got != want {
		t.Fatalf("FormatDisk = %q; want %q", got, want)
	}
}

func TestPercentBounds(t *testing.T) {
	if got := Percent(123, 0); got != 0 {
		t.Fatalf("Percent with zero total = %d; want 0", got)
	}
	for _, total := range []uint64{1, 3, 7, 100, 1023, 1 << 40} {
		step := total/50 + 1
		for used := uint64(0); used <= total; used += step {
			if p := Percent(used, total); p > 100 {
				t.Fatalf("Percent(%d, %d) = %d; out of range", used, total, p)
			}
		}
		if p := Percent(total, total); p != 100 {
			t.Fatalf("Percent(%d, %d) = %d; want 100", total, total, p)
		}
	}
	if got := Percent(999, 1000); got != 99 {
		t.Fatalf("Percent truncation = %d; want 99", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
	if got := PadRight("\x1b[31mHi\x1b[0m", 4); got != "\x1b[31mHi\x1b[0m  " {
		t.Fatalf("PadRight with ANSI failed: got %q", got)
	}
}

func TestVisibleWidth(t *testing.T) {
	if got := VisibleWidth("\x1b[1m\x1b[34malice\x1b[0m@box"); got != 9 {
		t.Fatalf("VisibleWidth = %d; want 9", got)
	}
}
