package app

import (
	"github.com/MohamedBourass/patternbench/internal/registry"
	"github.com/MohamedBourass/patternbench/patterns/abstractfactory"
	"github.com/MohamedBourass/patternbench/patterns/adapter"
	"github.com/MohamedBourass/patternbench/patterns/builder"
	"github.com/MohamedBourass/patternbench/patterns/chain"
	"github.com/MohamedBourass/patternbench/patterns/command"
	"github.com/MohamedBourass/patternbench/patterns/decorator"
	"github.com/MohamedBourass/patternbench/patterns/facade"
	"github.com/MohamedBourass/patternbench/patterns/factorymethod"
	"github.com/MohamedBourass/patternbench/patterns/flyweight"
	"github.com/MohamedBourass/patternbench/patterns/observer"
	"github.com/MohamedBourass/patternbench/patterns/prototype"
	"github.com/MohamedBourass/patternbench/patterns/proxy"
	"github.com/MohamedBourass/patternbench/patterns/singleton"
	"github.com/MohamedBourass/patternbench/patterns/state"
	"github.com/MohamedBourass/patternbench/patterns/strategy"
	"github.com/MohamedBourass/patternbench/patterns/visitor"
)

// coreModules is the default set of pattern demonstrations compiled into
// the harness. The order here fixes registration order and therefore the
// order of every listing and report.
var coreModules = []registry.Module{
	// creational
	singleton.Module{},
	factorymethod.Module{},
	abstractfactory.Module{},
	builder.Module{},
	prototype.Module{},
	// structural
	adapter.Module{},
	decorator.Module{},
	facade.Module{},
	flyweight.Module{},
	proxy.Module{},
	// behavioral
	strategy.Module{},
	observer.Module{},
	visitor.Module{},
	state.Module{},
	chain.Module{},
	command.Module{},
}
