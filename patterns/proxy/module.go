// Package proxy demonstrates the Proxy pattern: an access-control stand-in
// with the vault's own interface decides who may reach the real object.
package proxy

import (
	"context"
	"fmt"

	"github.com/MohamedBourass/patternbench/internal/contract"
	"github.com/MohamedBourass/patternbench/internal/registry"
)

const (
	name   = "proxy"
	intent = "Control access to an object through a stand-in with the same interface."
)

// vault is the subject interface shared by the real vault and its proxy.
type vault interface {
	read(user string) []string
}

type secretVault struct {
	secret string
}

func (v *secretVault) read(user string) []string {
	return []string{fmt.Sprintf("vault: secret is %s", v.secret)}
}

// accessProxy guards the real vault and only forwards reads from admins.
type accessProxy struct {
	admins map[string]bool
	real   *secretVault
}

func (p *accessProxy) read(user string) []string {
	if !p.admins[user] {
		return []string{fmt.Sprintf("proxy: denied read for %s", user)}
	}
	lines := []string{fmt.Sprintf("proxy: granted read for %s", user)}
	return append(lines, p.real.read(user)...)
}

type example struct {
	guarded vault
}

func (e *example) Setup(ctx context.Context) error {
	if e.guarded == nil {
		e.guarded = &accessProxy{
			admins: map[string]bool{"admin": true},
			real:   &secretVault{secret: "s3cr3t"},
		}
	}
	return nil
}

func (e *example) Run(ctx context.Context) ([]string, error) {
	var lines []string
	for _, user := range []string{"guest", "admin"} {
		lines = append(lines, e.guarded.read(user)...)
	}
	return lines, nil
}

func (e *example) Describe() contract.Info {
	return contract.Info{Name: name, Category: contract.Structural, Intent: intent}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the proxy demonstration to the harness registry.
func (Module) Register(r *registry.Registry) error {
	return r.Register(registry.Entry{
		Name:     name,
		Category: contract.Structural,
		Intent:   intent,
		New:      func() contract.Example { return &example{} },
	})
}
