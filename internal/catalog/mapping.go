package catalog

// LabelMapping pairs one wizard label with its internal domain key.
type LabelMapping struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// MapLabel converts a user-facing domain label (the wizard display
// string) to its internal key. Unmapped labels resolve to the default
// domain.
func (c *Catalog) MapLabel(label string) string {
	if key, ok := c.labelToKey[label]; ok {
		return key
	}
	return c.defaultKey
}

// ResolveKey accepts either a registered domain key or a user-facing
// label and returns the internal key, defaulting like MapLabel. Empty
// input resolves to the default domain.
func (c *Catalog) ResolveKey(labelOrKey string) string {
	if labelOrKey == "" {
		return c.defaultKey
	}
	if c.IsRegistered(labelOrKey) {
		return labelOrKey
	}
	return c.MapLabel(labelOrKey)
}

// Labels returns the user-facing domain labels in wizard order.
func (c *Catalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

// LabelMappings returns the full label table in wizard order.
func (c *Catalog) LabelMappings() []LabelMapping {
	out := make([]LabelMapping, 0, len(c.labels))
	for _, l := range c.labels {
		out = append(out, LabelMapping{Label: l, Key: c.labelToKey[l]})
	}
	return out
}

// Categories returns the professional-status categories in wizard order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}
