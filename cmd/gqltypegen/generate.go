package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	typegen "github.com/llehouerou/go-graphql-typegen"
	"github.com/llehouerou/go-graphql-typegen/internal/config"
	"github.com/llehouerou/go-graphql-typegen/pkg/schema"
	"github.com/llehouerou/go-graphql-typegen/pkg/shape"
)

type generateOptions struct {
	configFile string
	verbose    bool
	dump       bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve the configured operations and print the generated types",
		Long: "Resolve the configured operations and print the generated types. " +
			"Each schema type gets one variant per distinct selection shape; " +
			"the output lists every variant with its property layout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "gqltypegen.yaml", "Path to the configuration file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every cache decision")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the variant cache after generation")
	return cmd
}

func runGenerate(out, errOut io.Writer, opts *generateOptions) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	scalars, err := cfg.ScalarBindings()
	if err != nil {
		return err
	}

	log, sync, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer sync()

	s, err := schema.LoadFiles(cfg.Schema...)
	if err != nil {
		return err
	}
	doc, err := schema.LoadQueryFiles(s, cfg.Queries...)
	if err != nil {
		return err
	}

	ctx := typegen.New(s, typegen.Config{
		Namespace:     cfg.Namespace,
		RootContainer: cfg.RootContainer,
		Scalars:       scalars,
	}).WithLogger(log)

	res, err := ctx.Generate(doc)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if opts.dump {
		names := make([]string, 0, len(s.AST().Types))
		for name := range s.AST().Types {
			if vs := ctx.Variants(name); len(vs) > 0 {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			log.Info("variants", "type", name, "dump", spew.Sdump(ctx.Variants(name)))
		}
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(newReport(res)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintln(errOut, highlight("Generated!"),
		fmt.Sprintf("%d types for %d operations.", len(res.Artifacts), len(res.Operations)))
	return nil
}

func newLogger(verbose bool) (logr.Logger, func(), error) {
	zc := zap.NewDevelopmentConfig()
	if !verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("failed to build logger: %w", err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

type report struct {
	RunID      string            `yaml:"runId"`
	Namespace  string            `yaml:"namespace"`
	Operations []operationReport `yaml:"operations"`
	Fragments  map[string]string `yaml:"fragments,omitempty"`
	Types      []artifactReport  `yaml:"types"`
}

type operationReport struct {
	Name      string            `yaml:"name,omitempty"`
	Kind      string            `yaml:"kind"`
	Data      string            `yaml:"data"`
	Variables map[string]string `yaml:"variables,omitempty"`
}

type artifactReport struct {
	Identifier string            `yaml:"identifier"`
	Schema     string            `yaml:"schema"`
	Kind       string            `yaml:"kind"`
	Properties []propertyReport  `yaml:"properties,omitempty"`
	Members    map[string]string `yaml:"members,omitempty"`
	Values     []string          `yaml:"values,omitempty"`
	AliasOf    string            `yaml:"aliasOf,omitempty"`
}

type propertyReport struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

func newReport(res *typegen.Result) report {
	r := report{
		RunID:     res.RunID.String(),
		Namespace: res.Namespace,
		Fragments: res.Fragments,
	}
	for _, op := range res.Operations {
		o := operationReport{Name: op.Name, Kind: string(op.Kind), Data: op.Data.String()}
		for _, v := range op.Variables {
			if o.Variables == nil {
				o.Variables = map[string]string{}
			}
			o.Variables[v.Name] = v.Type.String()
		}
		r.Operations = append(r.Operations, o)
	}
	for _, a := range res.Artifacts {
		r.Types = append(r.Types, newArtifactReport(a))
	}
	return r
}

func newArtifactReport(a *shape.Artifact) artifactReport {
	ar := artifactReport{
		Identifier: a.Identifier,
		Schema:     a.TypeName,
		Kind:       a.Kind.String(),
		Members:    a.Members,
		Values:     a.Values,
	}
	if a.AliasOf != nil {
		ar.AliasOf = a.AliasOf.String()
	}
	for _, p := range a.Properties {
		ar.Properties = append(ar.Properties, propertyReport{Name: p.Name, Type: p.Type.String()})
	}
	return ar
}
