package entity

// ExportTable is a header-driven view of an exported CSV.
type ExportTable struct {
	Columns  []string            `json:"columns"`
	Rows     []ExportRow         `json:"rows"`
	Footer   map[string][]Count  `json:"footer"`
	Dropdown map[string][]string `json:"dropdown"`
}

type ExportRow struct {
	Class  string            `json:"class,omitempty"`
	Values map[string]string `json:"values"`
}

// Count is a value with its number of occurrences, in first-seen order.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}
