package options

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

// StoreOptions configures feedback persistence.
type StoreOptions struct {
	// Path is the BoltDB file holding feedback decisions. Empty selects
	// the in-memory store.
	Path string `json:"path" mapstructure:"path"`
}

func NewStoreOptions() *StoreOptions {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &StoreOptions{
		Path: filepath.Join(home, ".scryer", "feedback.db"),
	}
}

func (o *StoreOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Path, "store", o.Path, "Feedback database path (empty = in-memory)")
}

func (o *StoreOptions) Validate() []error {
	return nil
}
