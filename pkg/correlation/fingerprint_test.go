package correlation

import (
	"strings"
	"testing"
	"time"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "strips non-alphanumerics",
			text: "Yale offers seed funding...",
			want: "content_Yaleoffersseedfunding",
		},
		{
			name: "empty text",
			text: "",
			want: "content_",
		},
		{
			name: "truncates before stripping",
			text: strings.Repeat("a!", 100),
			want: "content_" + strings.Repeat("a", 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fingerprint(tt.text); got != tt.want {
				t.Errorf("Fingerprint(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFingerprintStableAcrossCallSites(t *testing.T) {
	// Producer and consumer must derive identical keys for the same text.
	text := "The Innovation Fund provides seed funding for early-stage ventures at Yale."
	if Fingerprint(text) != Fingerprint(text[:FingerprintLength]+" trailing junk") {
		t.Error("fingerprint depends on content beyond the canonical prefix")
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	p := DefaultRetryPolicy()
	if p.MaxAttempts != 10 {
		t.Errorf("MaxAttempts = %d, want 10", p.MaxAttempts)
	}
	if d := p.Delay(1); d != 100*time.Millisecond {
		t.Errorf("Delay(1) = %v, want 100ms", d)
	}
	if d := p.Delay(5); d != 500*time.Millisecond {
		t.Errorf("Delay(5) = %v, want 500ms", d)
	}
	if d := p.Delay(0); d != 100*time.Millisecond {
		t.Errorf("Delay(0) = %v, want clamped to 100ms", d)
	}
}
