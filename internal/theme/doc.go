// Package theme handles menu theme loading and hot-reload for menutui.
// It supports loading themes from ~/.config/menutui/themes/ and provides
// embedded default themes for use when no custom theme is configured.
package theme
