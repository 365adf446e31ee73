package entity

import (
	"time"

	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

// ItemKind is the explicit discriminant for the StateItem variants.
//
// The wire shapes are structurally distinguishable (tool items carry "tool",
// task items carry "name"), but an explicit tag keeps matching exhaustive
// instead of shape-sniffing.
type ItemKind string

const (
	ItemKindTool ItemKind = "tool"
	ItemKindTask ItemKind = "task"
)

// StateItem is one discrete unit of agent progress. Concrete variants are
// ToolStateItem and TaskStateItem; nothing is shared beyond identity,
// ordering and the creation timestamp.
type StateItem interface {
	// ItemID returns the identifier, unique within the owning AgentState.
	ItemID() string

	// Kind returns the variant discriminant.
	Kind() ItemKind

	// CreatedAt returns the emission timestamp.
	CreatedAt() time.Time

	// Validate reports whether the item carries its required fields.
	Validate() error
}

// ToolStateItem records one tool invocation made by the agent.
type ToolStateItem struct {
	// ID is the unique item identifier.
	ID string `json:"id"`

	// Timestamp is when the agent emitted this item.
	Timestamp time.Time `json:"timestamp"`

	// Tool is the tool name. Required.
	Tool string `json:"tool"`

	// Reasoning is optional free-text rationale for the invocation.
	Reasoning string `json:"reasoning,omitempty"`

	// Result is the producer-defined result payload. Opaque: consumers must
	// not assume structure beyond JSON-serializability, and decode it lazily.
	Result json.RawMessage `json:"result,omitempty"`
}

func (i ToolStateItem) ItemID() string       { return i.ID }
func (i ToolStateItem) Kind() ItemKind       { return ItemKindTool }
func (i ToolStateItem) CreatedAt() time.Time { return i.Timestamp }

func (i ToolStateItem) Validate() error {
	if i.Tool == "" {
		return errno.ErrMissingToolName
	}
	return nil
}

// TaskStateItem records one task the agent is tracking.
type TaskStateItem struct {
	// ID is the unique item identifier.
	ID string `json:"id"`

	// Timestamp is when the agent emitted this item.
	Timestamp time.Time `json:"timestamp"`

	// Name is the task name. Required.
	Name string `json:"name"`

	// Description is optional free-text detail.
	Description string `json:"description,omitempty"`
}

func (i TaskStateItem) ItemID() string       { return i.ID }
func (i TaskStateItem) Kind() ItemKind       { return ItemKindTask }
func (i TaskStateItem) CreatedAt() time.Time { return i.Timestamp }

func (i TaskStateItem) Validate() error {
	if i.Name == "" {
		return errno.ErrMissingTaskName
	}
	return nil
}

// AgentState is a complete snapshot of agent progress. Each update from the
// agent process replaces the previous snapshot wholesale; there is no
// diffing, and "newest" is purely the last position in combined order.
type AgentState struct {
	// ToolSteps are tool invocations, in emission order.
	ToolSteps []ToolStateItem `json:"toolSteps,omitempty"`

	// Tasks are task records, in emission order.
	Tasks []TaskStateItem `json:"tasks,omitempty"`
}

// Empty reports whether the snapshot carries no items. A nil snapshot is
// empty.
func (s *AgentState) Empty() bool {
	return s == nil || (len(s.ToolSteps) == 0 && len(s.Tasks) == 0)
}

// Len returns the combined item count.
func (s *AgentState) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ToolSteps) + len(s.Tasks)
}

// Items returns the combined emission-ordered sequence: tool steps first,
// then tasks. Display order must match this.
func (s *AgentState) Items() []StateItem {
	if s == nil {
		return nil
	}
	items := make([]StateItem, 0, s.Len())
	for _, step := range s.ToolSteps {
		items = append(items, step)
	}
	for _, task := range s.Tasks {
		items = append(items, task)
	}
	return items
}

// Newest returns the last item in combined order, or nil when empty.
func (s *AgentState) Newest() StateItem {
	if s == nil {
		return nil
	}
	if len(s.Tasks) > 0 {
		return s.Tasks[len(s.Tasks)-1]
	}
	if len(s.ToolSteps) > 0 {
		return s.ToolSteps[len(s.ToolSteps)-1]
	}
	return nil
}
