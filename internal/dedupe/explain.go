package dedupe

import (
	"fmt"
	"strings"
)

// Korean labels for the factor signals. The factor set itself is the stable
// contract; these labels are presentation.
var factorLabels = map[string]string{
	FactorSameEmail:      "이메일 일치",
	FactorSamePhone:      "전화번호 일치",
	FactorExactNameMatch: "이름 완전 일치",
	FactorSimilarName:    "이름 유사",
	FactorSameCompany:    "직전 회사 일치",
	FactorSamePosition:   "직전 직무 일치",
}

// Explain renders a human-readable summary of a classified pair, built from
// its classification tier and factor signals.
func Explain(p Pair) string {
	var tier string
	switch {
	case p.IsDuplicate:
		tier = "동일 인물일 가능성이 매우 높습니다"
	case p.IsPotential:
		tier = "중복 후보일 가능성이 있습니다"
	case p.IsHomonym:
		tier = "동명이인으로 추정됩니다"
	default:
		tier = "동일 인물로 보기 어렵습니다"
	}

	var labels []string
	for _, f := range p.Similarity.Factors {
		if l, ok := factorLabels[f]; ok {
			labels = append(labels, l)
		}
	}

	msg := fmt.Sprintf("%s (유사도 %.0f%%)", tier, p.Similarity.Overall*100)
	if len(labels) > 0 {
		msg += " - " + strings.Join(labels, ", ")
	}
	return msg
}
