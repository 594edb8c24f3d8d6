// Package listview provides a windowed list component for Bubble Tea views.
//
// Only the items inside the window are rendered, so a list stays cheap to
// draw no matter how many items it holds. The window follows the selected
// item: moving the selection past either edge scrolls by the minimum amount
// needed to keep it visible. Items may render to several lines each; the
// window size is counted in items, not lines.
package listview
