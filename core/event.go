package core

import "time"

// EventType enumerates every interaction the tracking layer can record.
type EventType string

const (
	EventView              EventType = "view"
	EventLike              EventType = "like"
	EventComment           EventType = "comment"
	EventShare             EventType = "share"
	EventBookmark          EventType = "bookmark"
	EventReadComplete      EventType = "read_complete"
	EventScroll            EventType = "scroll"
	EventClick             EventType = "click"
	EventSearch            EventType = "search"
	EventTimeSpent         EventType = "time_spent"
	EventPageView          EventType = "page_view"
	EventPageLeave         EventType = "page_leave"
	EventPageReturn        EventType = "page_return"
	EventSocialInteraction EventType = "social_interaction"
)

// Event is one immutable interaction record. Each event type is its own
// struct carrying only the fields that type actually has, so a scroll
// never pretends to have a completion rate.
//
// Events are created by the tracking layer, appended to the behavior store
// and never mutated afterwards.
type Event interface {
	Type() EventType
	OccurredAt() time.Time
	SessionID() string
}

// ArticleRef is implemented by the events tied to a specific article.
// Category and title may be empty when the tracking layer did not know
// them; consumers default the category to "general".
type ArticleRef interface {
	Event
	ArticleID() string
	ArticleCategory() string
	ArticleTitle() string
}

// Meta holds the fields shared by every event. Embed it in each variant.
type Meta struct {
	At      time.Time `json:"at"`
	Session string    `json:"session"`
}

func (m Meta) OccurredAt() time.Time { return m.At }
func (m Meta) SessionID() string     { return m.Session }

// Ref identifies the article an event is about. Category and title are
// denormalized onto the event so profile building does not need a catalog
// lookup.
type Ref struct {
	Article  string `json:"article_id"`
	Category string `json:"category,omitempty"`
	Title    string `json:"title,omitempty"`
}

// RefFor builds the reference for a catalog article.
func RefFor(a *Article) Ref {
	if a == nil {
		return Ref{}
	}
	return Ref{Article: a.ID, Category: a.Category, Title: a.Title}
}

func (a Ref) ArticleID() string       { return a.Article }
func (a Ref) ArticleCategory() string { return a.Category }
func (a Ref) ArticleTitle() string    { return a.Title }

// ViewEvent records an article page view, optionally with timing data
// collected before the page was left.
type ViewEvent struct {
	Meta
	Ref
	Duration    int     `json:"duration,omitempty"`    // seconds on page
	Completion  float64 `json:"completion,omitempty"`  // 0..1
	ScrollDepth float64 `json:"scroll_depth,omitempty"` // 0..100
}

func (ViewEvent) Type() EventType { return EventView }

// LikeEvent records a star-rating/like action on an article.
type LikeEvent struct {
	Meta
	Ref
}

func (LikeEvent) Type() EventType { return EventLike }

// CommentEvent records a posted comment.
type CommentEvent struct {
	Meta
	Ref
}

func (CommentEvent) Type() EventType { return EventComment }

// ShareEvent records a share, with the channel it went out on.
type ShareEvent struct {
	Meta
	Ref
	Channel string `json:"channel,omitempty"` // whatsapp / facebook / ...
}

func (ShareEvent) Type() EventType { return EventShare }

// BookmarkEvent records an article saved for later.
type BookmarkEvent struct {
	Meta
	Ref
}

func (BookmarkEvent) Type() EventType { return EventBookmark }

// ReadCompleteEvent records that the reader reached the end of an article.
type ReadCompleteEvent struct {
	Meta
	Ref
	Duration   int     `json:"duration,omitempty"` // seconds
	Completion float64 `json:"completion,omitempty"`
}

func (ReadCompleteEvent) Type() EventType { return EventReadComplete }

// ScrollEvent records the deepest scroll position reached so far.
type ScrollEvent struct {
	Meta
	Ref
	Depth float64 `json:"depth"` // 0..100
}

func (ScrollEvent) Type() EventType { return EventScroll }

// ClickEvent records a click on a tracked element.
type ClickEvent struct {
	Meta
	Ref
	Target string `json:"target,omitempty"`
}

func (ClickEvent) Type() EventType { return EventClick }

// SearchEvent records a site search.
type SearchEvent struct {
	Meta
	Query   string `json:"query"`
	Results int    `json:"results"`
}

func (SearchEvent) Type() EventType { return EventSearch }

// TimeSpentEvent records additional reading time for an article.
type TimeSpentEvent struct {
	Meta
	Ref
	Duration int `json:"duration"` // seconds
}

func (TimeSpentEvent) Type() EventType { return EventTimeSpent }

// PageViewEvent records navigation to a non-article page.
type PageViewEvent struct {
	Meta
	Page string `json:"page"`
}

func (PageViewEvent) Type() EventType { return EventPageView }

// PageLeaveEvent records leaving a page, with the time spent on it.
type PageLeaveEvent struct {
	Meta
	Page     string `json:"page"`
	Duration int    `json:"duration,omitempty"` // seconds
}

func (PageLeaveEvent) Type() EventType { return EventPageLeave }

// PageReturnEvent records the tab regaining focus.
type PageReturnEvent struct {
	Meta
	Page string `json:"page"`
}

func (PageReturnEvent) Type() EventType { return EventPageReturn }

// SocialEvent records interaction with an embedded social widget.
type SocialEvent struct {
	Meta
	Ref
	Network string `json:"network,omitempty"`
	Action  string `json:"action,omitempty"`
}

func (SocialEvent) Type() EventType { return EventSocialInteraction }
