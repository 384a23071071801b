// Package dedupe scores pairs of candidate records for similarity and
// classifies them as definite duplicates, potential duplicates, or homonyms
// (distinct people sharing a name). All functions are pure and synchronous:
// no I/O, no goroutines, no state carried between calls.
package dedupe

import (
	"sort"
	"time"
)

// Record is the lightweight candidate view the detector scores. Only Name is
// required; empty optional fields are excluded from the weighted average
// rather than penalized. Records are never mutated.
type Record struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LastCompany  string    `json:"lastCompany,omitempty"`
	LastPosition string    `json:"lastPosition,omitempty"`
	SourceFile   string    `json:"sourceFile,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Named factor signals attached to a Similarity.
const (
	FactorSameEmail      = "same_email"
	FactorSamePhone      = "same_phone"
	FactorExactNameMatch = "exact_name_match"
	FactorSimilarName    = "similar_name"
	FactorSameCompany    = "same_company"
	FactorSamePosition   = "same_position"
)

// Similarity holds the composite score and the per-field scores for one
// unordered pair, all in [0,1], plus the factor signals that fired.
type Similarity struct {
	Overall  float64  `json:"overall"`
	Name     float64  `json:"nameScore"`
	Email    float64  `json:"emailScore"`
	Phone    float64  `json:"phoneScore"`
	Company  float64  `json:"companyScore"`
	Position float64  `json:"positionScore"`
	Factors  []string `json:"factors"`
}

// Pair is the read-only classification of one unordered record pair.
// IsDuplicate and IsPotential are mutually exclusive; IsHomonym marks a
// strong name match whose contact and company evidence all disagree.
type Pair struct {
	A           Record     `json:"recordA"`
	B           Record     `json:"recordB"`
	Similarity  Similarity `json:"similarity"`
	IsDuplicate bool       `json:"isDuplicate"`
	IsPotential bool       `json:"isPotentialDuplicate"`
	IsHomonym   bool       `json:"isHomonym"`
}

// Groups is the result of a full pairwise scan.
type Groups struct {
	Definite  []Pair `json:"definite"`
	Potential []Pair `json:"potential"`
	Homonyms  []Pair `json:"homonyms"`
}

// Weights control the contribution of each field to the overall score. Only
// fields present in both records contribute (name always does); the weighted
// sum is divided by the weight actually used, so missing fields are excluded
// rather than counted against the pair.
type Weights struct {
	Name     float64 `json:"name"`
	Email    float64 `json:"email"`
	Phone    float64 `json:"phone"`
	Company  float64 `json:"company"`
	Position float64 `json:"position"`
}

// DefaultWeights returns the tuned field weights.
func DefaultWeights() Weights {
	return Weights{Name: 0.25, Email: 0.25, Phone: 0.25, Company: 0.15, Position: 0.10}
}

// Thresholds hold the classification cut points. The Homonym* gates bound the
// "strong name, everything else disagrees" carve-out. These are tuned
// defaults, overridable per call.
type Thresholds struct {
	Definite       float64 `json:"definite"`
	Potential      float64 `json:"potential"`
	NameSimilarity float64 `json:"nameSimilarity"`
	HomonymName    float64 `json:"homonymName"`
	HomonymEmail   float64 `json:"homonymEmail"`
	HomonymPhone   float64 `json:"homonymPhone"`
	HomonymCompany float64 `json:"homonymCompany"`
}

// DefaultThresholds returns the tuned classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Definite:       0.90,
		Potential:      0.60,
		NameSimilarity: 0.70,
		HomonymName:    0.80,
		HomonymEmail:   0.50,
		HomonymPhone:   0.50,
		HomonymCompany: 0.60,
	}
}

const contactMatchScore = 0.9

// CalculateSimilarity scores one pair across the five fields with the default
// weights. Symmetric: swapping a and b yields identical scores.
func CalculateSimilarity(a, b Record) Similarity {
	return calculateSimilarity(a, b, DefaultWeights())
}

func calculateSimilarity(a, b Record, w Weights) Similarity {
	var s Similarity

	s.Name = nameSimilarity(a.Name, b.Name)
	sum := w.Name * s.Name
	weight := w.Name

	if a.Email != "" && b.Email != "" {
		s.Email = emailSimilarity(a.Email, b.Email)
		sum += w.Email * s.Email
		weight += w.Email
	}
	if a.Phone != "" && b.Phone != "" {
		s.Phone = phoneSimilarity(a.Phone, b.Phone)
		sum += w.Phone * s.Phone
		weight += w.Phone
	}
	if a.LastCompany != "" && b.LastCompany != "" {
		s.Company = companySimilarity(a.LastCompany, b.LastCompany)
		sum += w.Company * s.Company
		weight += w.Company
	}
	if a.LastPosition != "" && b.LastPosition != "" {
		s.Position = positionSimilarity(a.LastPosition, b.LastPosition)
		sum += w.Position * s.Position
		weight += w.Position
	}

	s.Overall = sum / weight

	if s.Name >= 1.0 {
		s.Factors = append(s.Factors, FactorExactNameMatch)
	} else if s.Name >= 0.8 {
		s.Factors = append(s.Factors, FactorSimilarName)
	}
	if s.Email >= contactMatchScore {
		s.Factors = append(s.Factors, FactorSameEmail)
	}
	if s.Phone >= contactMatchScore {
		s.Factors = append(s.Factors, FactorSamePhone)
	}
	if a.LastCompany != "" && b.LastCompany != "" && s.Company >= 0.8 {
		s.Factors = append(s.Factors, FactorSameCompany)
	}
	if a.LastPosition != "" && b.LastPosition != "" && s.Position >= 0.8 {
		s.Factors = append(s.Factors, FactorSamePosition)
	}

	return s
}

// DetectDuplicate scores and classifies one pair.
//
// Order matters: a weak name match vetoes everything, and the homonym check
// runs before the potential-duplicate check so that two strangers sharing a
// common name do not cross the potential threshold on name alone.
func DetectDuplicate(a, b Record, th Thresholds) Pair {
	s := CalculateSimilarity(a, b)
	p := Pair{A: a, B: b, Similarity: s}

	if s.Name < th.NameSimilarity {
		return p
	}

	hasContactMatch := s.Email >= contactMatchScore || s.Phone >= contactMatchScore

	p.IsHomonym = s.Name >= th.HomonymName &&
		s.Email < th.HomonymEmail &&
		s.Phone < th.HomonymPhone &&
		s.Company < th.HomonymCompany

	p.IsDuplicate = hasContactMatch && s.Overall >= th.Definite
	p.IsPotential = !p.IsHomonym && !p.IsDuplicate &&
		s.Overall >= th.Potential && s.Overall < th.Definite

	return p
}

// FindDuplicateGroups compares every record against every other and buckets
// the classified pairs. Cost is O(n²) string comparisons: fine for the
// hundreds of records a recruiter pool holds, not for millions. Definite and
// potential groups sort by overall score descending, homonyms by name score.
func FindDuplicateGroups(records []Record, th Thresholds) Groups {
	var g Groups

	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			p := DetectDuplicate(records[i], records[j], th)
			switch {
			case p.IsDuplicate:
				g.Definite = append(g.Definite, p)
			case p.IsPotential:
				g.Potential = append(g.Potential, p)
			case p.IsHomonym:
				g.Homonyms = append(g.Homonyms, p)
			}
		}
	}

	sort.Slice(g.Definite, func(i, j int) bool {
		return g.Definite[i].Similarity.Overall > g.Definite[j].Similarity.Overall
	})
	sort.Slice(g.Potential, func(i, j int) bool {
		return g.Potential[i].Similarity.Overall > g.Potential[j].Similarity.Overall
	})
	sort.Slice(g.Homonyms, func(i, j int) bool {
		return g.Homonyms[i].Similarity.Name > g.Homonyms[j].Similarity.Name
	})

	return g
}
