// Package statuscatalog carga el catálogo de estados de reparación desde YAML.
package statuscatalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/rma-tracker/internal/domain/entity"
)

//go:embed default.yaml
var defaultYAML []byte

type fileFormat struct {
	Initial   string   `yaml:"initial"`
	Statuses  []string `yaml:"statuses"`
	Done      []string `yaml:"done"`
	RMAClosed []string `yaml:"rma_closed"`
}

// Default devuelve el catálogo embebido (14 estados).
func Default() *entity.StatusCatalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("statuscatalog: default.yaml inválido: %v", err))
	}
	return c
}

// Load lee path; vacío = catálogo embebido.
func Load(path string) (*entity.StatusCatalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("statuscatalog: leer %s: %w", path, err)
	}
	return Parse(data)
}

// Parse valida que haya estados, que initial y done pertenezcan a ellos y que no haya duplicados.
func Parse(data []byte) (*entity.StatusCatalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("statuscatalog: yaml: %w", err)
	}
	if len(f.Statuses) == 0 {
		return nil, fmt.Errorf("statuscatalog: lista de estados vacía")
	}
	seen := make(map[string]bool, len(f.Statuses))
	for _, s := range f.Statuses {
		if s == "" || seen[s] {
			return nil, fmt.Errorf("statuscatalog: estado vacío o duplicado %q", s)
		}
		seen[s] = true
	}
	if f.Initial == "" {
		f.Initial = f.Statuses[0]
	}
	if !seen[f.Initial] {
		return nil, fmt.Errorf("statuscatalog: estado inicial %q no está en la lista", f.Initial)
	}
	for _, d := range f.Done {
		if !seen[d] {
			return nil, fmt.Errorf("statuscatalog: estado terminal %q no está en la lista", d)
		}
	}
	return &entity.StatusCatalog{
		Initial:   f.Initial,
		Statuses:  f.Statuses,
		Done:      f.Done,
		RMAClosed: f.RMAClosed,
	}, nil
}
