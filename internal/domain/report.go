package domain

// ReportMeta contains metadata about a catalog build
type ReportMeta struct {
	RunID           string `json:"run_id" yaml:"run_id"`
	Root            string `json:"root" yaml:"root"`
	TotalFiles      int    `json:"total_files" yaml:"total_files"`
	TotalTestCases  int    `json:"total_test_cases" yaml:"total_test_cases"`
	HiddenTestCases int    `json:"hidden_test_cases" yaml:"hidden_test_cases"`
	TotalTags       int    `json:"total_tags" yaml:"total_tags"`
	Issues          int    `json:"issues" yaml:"issues"`
	Timestamp       string `json:"timestamp" yaml:"timestamp"`
}

// ReportEntry is the exported form of a single registered test case
type ReportEntry struct {
	Name       string   `json:"name" yaml:"name" csv:"name"`
	ClassName  string   `json:"class_name,omitempty" yaml:"class_name,omitempty" csv:"class_name"`
	File       string   `json:"file" yaml:"file" csv:"file"`
	Line       int      `json:"line" yaml:"line" csv:"line"`
	Tags       []string `json:"tags" yaml:"tags" csv:"-"`
	LcaseTags  []string `json:"lcase_tags" yaml:"lcase_tags" csv:"-"`
	TagSpec    string   `json:"tag_spec" yaml:"tag_spec" csv:"tags"`
	Properties string   `json:"properties" yaml:"properties" csv:"properties"`
}

// Report is the complete output structure of an export
type Report struct {
	Meta      ReportMeta    `json:"meta" yaml:"meta"`
	TestCases []ReportEntry `json:"test_cases" yaml:"test_cases"`
	Issues    []Issue       `json:"issues,omitempty" yaml:"issues,omitempty"`
}
