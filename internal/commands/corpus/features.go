package corpuscmd

// FeatureGates exposes runtime feature toggles required by corpus command
// handlers. Callers supply closures that read from the runtime config so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	LintEnabled    func() bool
	CatalogEnabled func() bool
}

func (g FeatureGates) lintEnabled() bool {
	if g.LintEnabled == nil {
		return true
	}
	return g.LintEnabled()
}

func (g FeatureGates) catalogEnabled() bool {
	if g.CatalogEnabled == nil {
		return true
	}
	return g.CatalogEnabled()
}
