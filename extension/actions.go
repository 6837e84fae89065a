package extension

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/textpatch/model/types"
)

// Actions provides action service
type Actions struct {
	services map[string]types.Service
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service, replacing any service of the same name
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.services[service.Name()] = service
}

// Names returns sorted names of registered services
func (s *Actions) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]string, 0, len(s.services))
	for name := range s.services {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Run executes service method with supplied input and output
func (s *Actions) Run(ctx context.Context, service, method string, input, output interface{}) error {
	srv := s.Lookup(service)
	if srv == nil {
		return types.NewServiceNotFoundError(service)
	}
	exec, err := srv.Method(method)
	if err != nil {
		return fmt.Errorf("%v: %w", service, err)
	}
	return exec(ctx, input, output)
}

// NewActions creates a new action service
func NewActions(services ...types.Service) *Actions {
	ret := &Actions{
		services: make(map[string]types.Service),
	}
	for _, service := range services {
		if service != nil {
			ret.Register(service)
		}
	}
	return ret
}
