// Package paths resolves the directories chatml reads from and writes to.
// It follows the XDG Base Directory specification through adrg/xdg and
// lets CHATML_CONFIG_DIR and CHATML_STATE_DIR override the results.
package paths
