package options

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ServerOptions locates the agent process's event stream.
type ServerOptions struct {
	Addr string `json:"addr" mapstructure:"addr"`
}

func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		Addr: "http://localhost:11791",
	}
}

func (o *ServerOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "server", o.Addr, "Agent event stream server address")
}

// Complete normalizes the address.
func (o *ServerOptions) Complete() {
	if o.Addr != "" && !strings.HasPrefix(o.Addr, "http://") && !strings.HasPrefix(o.Addr, "https://") {
		o.Addr = "http://" + o.Addr
	}
	o.Addr = strings.TrimRight(o.Addr, "/")
}

func (o *ServerOptions) Validate() []error {
	var errs []error
	if o.Addr == "" {
		errs = append(errs, fmt.Errorf("server address is required"))
	}
	return errs
}
