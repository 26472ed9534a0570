// Package research serves canned summaries styled after public health data
// sources. Nothing here performs network I/O; every lookup is an in-memory
// table hit, which keeps the panel usable offline and deterministic.
package research

import (
	"fmt"
	"strings"
)

// Article is one literature search hit.
type Article struct {
	Title   string
	Authors string
	Journal string
	Year    int
	Summary string
}

// Guideline is one agency fact sheet on a disease area.
type Guideline struct {
	Name        string
	Fact        string
	Prevention  string
	RiskFactors string
	Statistics  string
}

// Resource points at an institute and the services it offers.
type Resource struct {
	Name      string
	Institute string
	Services  []string
	Website   string
	Note      string
}

// UnavailableError reports a topic with no canned data for a source.
type UnavailableError struct {
	Source    string
	Topic     string
	Available []string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s data not available for %q (try: %s)", e.Source, e.Topic, strings.Join(e.Available, ", "))
}

func normalizeTopic(topic string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), " ", "_")
}

// Articles returns literature hits templated on the query. Any non-empty
// query produces results.
func Articles(query string) []Article {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return []Article{
		{
			Title:   fmt.Sprintf("Research on %s: Evidence-Based Review", query),
			Authors: "Smith J, Johnson K, et al.",
			Journal: "Journal of Health Sciences",
			Year:    2024,
			Summary: fmt.Sprintf("Latest findings on %s from peer-reviewed research", query),
		},
		{
			Title:   fmt.Sprintf("Clinical Guidelines for %s Management", query),
			Authors: "CDC Health Division",
			Journal: "CDC Guidelines",
			Year:    2024,
			Summary: fmt.Sprintf("Evidence-based recommendations for %s prevention and management", query),
		},
	}
}

var guidelines = map[string]Guideline{
	"cardiovascular_disease": {
		Name:        "Cardiovascular Disease",
		Fact:        "Leading cause of death in US",
		Prevention:  "Regular exercise, healthy diet, manage stress",
		RiskFactors: "High blood pressure, high cholesterol, smoking, diabetes, obesity",
		Statistics:  "1 in 5 deaths caused by heart disease",
	},
	"diabetes": {
		Name:        "Diabetes",
		Fact:        "37.3 million Americans have diabetes",
		Prevention:  "Maintain healthy weight, exercise, healthy diet",
		RiskFactors: "Family history, obesity, age",
		Statistics:  "1 new case every 11 seconds",
	},
	"respiratory_health": {
		Name:        "Respiratory Health",
		Fact:        "Chronic lower respiratory disease is #3 cause of death",
		Prevention:  "Don't smoke, avoid air pollution, exercise",
		RiskFactors: "Smoking, air pollution, genetic factors",
		Statistics:  "6.2 million adults have chronic bronchitis",
	},
	"cancer": {
		Name:        "Cancer Prevention",
		Fact:        "Cancer is 2nd leading cause of death",
		Prevention:  "Avoid tobacco, limit alcohol, sun protection, screening",
		RiskFactors: "Tobacco, alcohol, sun exposure, family history",
		Statistics:  "1 in 3 Americans diagnosed with cancer in lifetime",
	},
}

var guidelineOrder = []string{"cardiovascular_disease", "diabetes", "respiratory_health", "cancer"}

// GuidelineTopics lists the topics Guidelines can answer, in a fixed order.
func GuidelineTopics() []string {
	return append([]string(nil), guidelineOrder...)
}

// Guidelines returns the agency fact sheet for a topic. Matching normalizes
// case and maps spaces to underscores.
func Guidelines(topic string) (Guideline, error) {
	g, ok := guidelines[normalizeTopic(topic)]
	if !ok {
		return Guideline{}, &UnavailableError{Source: "CDC", Topic: topic, Available: GuidelineTopics()}
	}
	return g, nil
}

var resources = map[string]Resource{
	"mental_wellness": {
		Name:      "Mental Wellness",
		Institute: "National Institute of Mental Health (NIMH)",
		Services:  []string{"Therapy", "Counseling", "Support groups", "Crisis helpline"},
		Website:   "nimh.nih.gov",
		Note:      "National Crisis Hotline: 988",
	},
	"nutrition": {
		Name:      "Nutrition",
		Institute: "National Institute of Diabetes and Digestive and Kidney Diseases",
		Services:  []string{"Nutrition guides", "Meal planning", "Dietary research"},
		Website:   "niddk.nih.gov",
		Note:      "Science-based nutritional guidance",
	},
	"aging": {
		Name:      "Healthy Aging",
		Institute: "National Institute on Aging",
		Services:  []string{"Senior health info", "Cognitive health", "Caregiving resources"},
		Website:   "nia.nih.gov",
		Note:      "Research on aging and longevity",
	},
}

var resourceOrder = []string{"mental_wellness", "nutrition", "aging"}

// ResourceTopics lists the topics Resources can answer, in a fixed order.
func ResourceTopics() []string {
	return append([]string(nil), resourceOrder...)
}

// Resources returns the institute pointer for a topic.
func Resources(topic string) (Resource, error) {
	r, ok := resources[normalizeTopic(topic)]
	if !ok {
		return Resource{}, &UnavailableError{Source: "NIH", Topic: topic, Available: ResourceTopics()}
	}
	return r, nil
}
