package render

import (
	"github.com/jinzhu/copier"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

// Sub-renderer signatures. Each receives the theme so that overriding one
// sub-renderer leaves every label, icon and style available to the others.
type (
	// ItemRenderer renders one state item. newest marks the last item in
	// combined emission order.
	ItemRenderer func(item entity.StateItem, newest bool, theme Theme) string

	// SkeletonRenderer renders the loading placeholder shown while status
	// is in-progress and no items exist.
	SkeletonRenderer func(theme Theme) string

	// EmptyRenderer renders the explicit no-items message shown for a
	// terminal status with zero items.
	EmptyRenderer func(theme Theme) string

	// ContentRenderer renders the response body.
	ContentRenderer func(resp *entity.Response, theme Theme) string

	// FeedbackButtonRenderer renders the approve/reject controls.
	FeedbackButtonRenderer func(theme Theme) string

	// FeedbackDoneRenderer renders the completed-feedback display.
	FeedbackDoneRenderer func(record *entity.FeedbackRecord, theme Theme) string
)

// Config enumerates every override point of the renderers. Zero-value
// fields fall back to documented defaults; options are independent, so
// setting one never alters another's output.
type Config struct {
	// Theme overrides labels, icons and styles. Unset fields keep their
	// defaults, so a single label can be replaced without touching the
	// rest. Default: DefaultTheme().
	Theme *Theme

	// Item replaces the per-item renderer. Default: defaultItemRenderer.
	Item ItemRenderer

	// Skeleton replaces the loading placeholder. Default: a static
	// spinner frame plus Labels.Loading.
	Skeleton SkeletonRenderer

	// Empty replaces the no-items message. Default: Labels.Empty.
	Empty EmptyRenderer

	// Content replaces the response body renderer. Default: plain text.
	// MarkdownContent is available for glamour-rendered output.
	Content ContentRenderer

	// FeedbackButtons replaces the approve/reject controls.
	FeedbackButtons FeedbackButtonRenderer

	// FeedbackDone replaces the completed-feedback display.
	FeedbackDone FeedbackDoneRenderer

	// Collapsed folds the item list into a one-line summary.
	// Default: false.
	Collapsed bool

	// MaxHeight truncates rendered output to at most this many lines.
	// Default: 0 (unbounded).
	MaxHeight int

	// Width wraps long reasoning/content lines. Default: 80.
	Width int
}

const defaultWidth = 80

// withDefaults resolves every unset option. The theme is deep-copied so the
// caller keeping a pointer to it cannot mutate rendered output afterwards.
func (c Config) withDefaults() Config {
	theme := DefaultTheme()
	if c.Theme != nil {
		// Merge set fields over the defaults. The deep copy also detaches
		// the renderer from the caller's theme value.
		_ = copier.CopyWithOption(&theme, c.Theme, copier.Option{IgnoreEmpty: true, DeepCopy: true})
	}
	c.Theme = &theme

	if c.Item == nil {
		c.Item = defaultItemRenderer
	}
	if c.Skeleton == nil {
		c.Skeleton = defaultSkeletonRenderer
	}
	if c.Empty == nil {
		c.Empty = defaultEmptyRenderer
	}
	if c.Content == nil {
		c.Content = PlainContent
	}
	if c.FeedbackButtons == nil {
		c.FeedbackButtons = defaultFeedbackButtons
	}
	if c.FeedbackDone == nil {
		c.FeedbackDone = defaultFeedbackDone
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	return c
}
