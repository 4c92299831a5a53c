package sparql

// Value is one typed cell of a binding record. Type distinguishes URIs from
// literals; Lang carries the optional language tag of a literal.
type Value struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Lang  string `json:"xml:lang,omitempty"`
}

// Binding is one row of a query result, mapping variable name to value.
type Binding map[string]Value

// Response is the application/sparql-results+json envelope.
type Response struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// Get returns the raw value bound to the variable, or "" when unbound.
func (b Binding) Get(name string) string {
	if v, ok := b[name]; ok {
		return v.Value
	}
	return ""
}

// Has reports whether the variable is bound with a non-empty value.
func (b Binding) Has(name string) bool {
	v, ok := b[name]
	return ok && v.Value != ""
}
