// Package plan serializes a configured build into the YAML document consumed
// by the build orchestrator.
package plan

import (
	"io"

	"carbonengine.dev/carbide/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FormatVersion identifies the plan document layout.
const FormatVersion = "1"

// Writer implements ports.PlanWriter using YAML.
type Writer struct{}

// NewWriter creates a new plan Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// document is the top-level plan structure.
type document struct {
	Version   string         `yaml:"version"`
	Platform  platformDTO    `yaml:"platform"`
	Env       envDTO         `yaml:"env"`
	Targets   []*targetDTO   `yaml:"targets"`
	Artifacts []*artifactDTO `yaml:"artifacts"`
}

type platformDTO struct {
	Name         string `yaml:"name"`
	Architecture string `yaml:"architecture"`
	Compiler     string `yaml:"compiler"`
	BuildType    string `yaml:"buildType"`
	Strict       bool   `yaml:"strict"`
	VariantDir   string `yaml:"variantDir"`
	InstallDir   string `yaml:"installDir"`
}

type envDTO struct {
	Fingerprint string `yaml:"fingerprint"`
	// Variables keeps the environment's own key order so documents diff
	// cleanly between configurations.
	Variables yaml.Node `yaml:"variables"`
}

// targetDTO carries the configured environment a target's artifacts are built
// with. The base env lacks the consumer link setup and precompiled header
// flags, so the orchestrator must compile each target against its own env.
type targetDTO struct {
	Name      string   `yaml:"name"`
	Env       envDTO   `yaml:"env"`
	Artifacts []string `yaml:"artifacts"`
}

type artifactDTO struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"`
	Sources      []string `yaml:"sources,omitempty"`
	Dependencies []string `yaml:"dependsOn,omitempty"`
}

// Write emits the plan to w. Artifacts appear in validated build order,
// targets in configuration order and environment variables in sorted key
// order, so identical configurations produce byte-identical documents.
func (p *Writer) Write(w io.Writer, desc *domain.PlatformDescriptor, graph *domain.Graph, targets []domain.TargetEnv) error {
	doc := document{
		Version: FormatVersion,
		Platform: platformDTO{
			Name:         desc.Platform,
			Architecture: desc.Architecture,
			Compiler:     desc.Compiler,
			BuildType:    string(desc.BuildType),
			Strict:       desc.Strict,
			VariantDir:   desc.VariantDir(),
			InstallDir:   desc.InstallDir(),
		},
		Env: envDTO{
			Fingerprint: desc.Env.Fingerprint(),
			Variables:   envVariables(desc.Env),
		},
	}

	for _, target := range targets {
		doc.Targets = append(doc.Targets, &targetDTO{
			Name: target.Target,
			Env: envDTO{
				Fingerprint: target.Env.Fingerprint(),
				Variables:   envVariables(target.Env),
			},
			Artifacts: target.Artifacts,
		})
	}

	for artifact := range graph.Walk() {
		doc.Artifacts = append(doc.Artifacts, &artifactDTO{
			Name:         artifact.Name,
			Kind:         string(artifact.Kind),
			Sources:      artifact.Sources,
			Dependencies: artifact.Dependencies,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&doc); err != nil {
		return zerr.Wrap(err, "failed to encode build plan")
	}
	return nil
}

// envVariables builds an explicit mapping node so the sorted key order from
// Env.Keys survives YAML encoding. A key holding both a scalar and a list
// serializes as the scalar, the same precedence Env.Dump applies.
func envVariables(env *domain.Env) yaml.Node {
	node := yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range env.Keys() {
		var value yaml.Node
		if list := env.List(key); list != nil && env.Get(key) == "" {
			value.Kind = yaml.SequenceNode
			value.Tag = "!!seq"
			for _, item := range list {
				value.Content = append(value.Content, scalarNode(item))
			}
		} else {
			value = *scalarNode(env.Get(key))
		}

		node.Content = append(node.Content, scalarNode(key), &value)
	}
	return node
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
