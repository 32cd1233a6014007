package cache

// Keyer derives cache keys. Implementations must fold every input that
// changes the output into the key.
type Keyer interface {
	// PlanKey identifies a planned sheet.
	PlanKey(productsHash string, opts PlanKeyOpts) string
	// ArtifactKey identifies one rendered output of a plan.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts are the planning inputs besides the products.
type PlanKeyOpts struct {
	Paper  string `json:"paper"`
	SizeID int    `json:"size_id"`
}

// ArtifactKeyOpts are the rendering inputs besides the plan.
type ArtifactKeyOpts struct {
	Format   string   `json:"format"`
	Content  []string `json:"content"`
	Currency string   `json:"currency,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Outlines bool     `json:"outlines"`
}

// DefaultKeyer hashes options into namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlanKey returns "plan:<hash>".
func (DefaultKeyer) PlanKey(productsHash string, opts PlanKeyOpts) string {
	return hashKey("plan", productsHash, opts)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, so several deployments can share
// one redis without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlanKey generates a prefixed plan key.
func (k *ScopedKeyer) PlanKey(productsHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(productsHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
