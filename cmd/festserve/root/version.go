package root

import "pkg.festserve.dev/festserve-cli/common/printer"

// AppVersion is set by main from ldflags.
var AppVersion = "dev"

func (h *Handler) Version() error {
	printer.Infof("FestServe CLI %s\n", h.AppVersion)
	return nil
}
