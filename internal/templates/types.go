package templates

// BootstrapData contains data for rendering the bootstrap script.
type BootstrapData struct {
	// AppsPath is the absolute applications root prepended to sys.path.
	AppsPath string

	// Apps are the discovered application names, in catalog order.
	Apps []string

	// ContribApps are the built-in framework applications. Defaults to ContribApps.
	ContribApps []string
}
