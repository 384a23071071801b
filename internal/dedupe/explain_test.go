package dedupe

import (
	"strings"
	"testing"
)

func TestExplain(t *testing.T) {
	th := DefaultThresholds()

	dup := DetectDuplicate(
		Record{Name: "홍길동", Email: "hong@test.com", Phone: "010-1234-5678"},
		Record{Name: "홍길동", Email: "hong@test.com", Phone: "010-1234-5678"},
		th,
	)
	msg := Explain(dup)
	for _, want := range []string{"매우 높습니다", "이메일 일치", "전화번호 일치", "이름 완전 일치"} {
		if !strings.Contains(msg, want) {
			t.Errorf("duplicate explanation missing %q: %s", want, msg)
		}
	}

	hom := DetectDuplicate(
		Record{Name: "박지성", Email: "park1@test.com"},
		Record{Name: "박지성", Email: "completely-different@other.com"},
		th,
	)
	if msg := Explain(hom); !strings.Contains(msg, "동명이인") {
		t.Errorf("homonym explanation should mention 동명이인: %s", msg)
	}

	none := DetectDuplicate(Record{Name: "홍길동"}, Record{Name: "이순신"}, th)
	if msg := Explain(none); !strings.Contains(msg, "어렵습니다") {
		t.Errorf("non-match explanation unexpected: %s", msg)
	}
}
