package app

import (
	"github.com/vk/synergrid/internal/config"
	"github.com/vk/synergrid/internal/registry"
	"github.com/vk/synergrid/modules/memory"
	"github.com/vk/synergrid/modules/perception"
	"github.com/vk/synergrid/modules/reasoning"
	"github.com/zclconf/go-cty/cty"
)

// coreFactories is the definitive list of module factories compiled into the
// synergrid binary, with any declared options applied from the config model.
func coreFactories(model *config.Model) []registry.Factory {
	perc := &perception.Module{}
	if def, ok := model.Module("perception"); ok {
		if v, ok := def.Options["feed_url"]; ok && v.Type() == cty.String {
			perc.FeedURL = v.AsString()
		}
		if v, ok := def.Options["feed_namespace"]; ok && v.Type() == cty.String {
			perc.FeedNamespace = v.AsString()
		}
		if v, ok := def.Options["watch_paths"]; ok && v.CanIterateElements() {
			for it := v.ElementIterator(); it.Next(); {
				_, elem := it.Element()
				if elem.Type() == cty.String {
					perc.WatchPaths = append(perc.WatchPaths, elem.AsString())
				}
			}
		}
	}

	mem := &memory.Module{}
	if def, ok := model.Module("memory"); ok {
		if v, ok := def.Options["capacity"]; ok && v.Type() == cty.Number {
			capacity, _ := v.AsBigFloat().Int64()
			mem.Capacity = int(capacity)
		}
	}

	return []registry.Factory{
		perc,
		&reasoning.Module{},
		mem,
	}
}
