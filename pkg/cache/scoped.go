package cache

// ScopedKeyer prefixes every key from an inner Keyer. Server deployments
// hosting several universes under one Redis instance give each one its own
// scope so cached scenes never leak across tenants.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with a key prefix. A nil inner falls back to
// the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// TreeKey generates a prefixed content-tree key.
func (k *ScopedKeyer) TreeKey(opts TreeKeyOpts) string {
	return k.prefix + k.inner.TreeKey(opts)
}

// SceneKey generates a prefixed scene key.
func (k *ScopedKeyer) SceneKey(treeHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(treeHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
