package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depstatus/internal/domain/entities"
)

// ErrReportNotFound is returned when no analysis report exists for a repository.
var ErrReportNotFound = errors.New("analysis report not found")

// report is the YAML document written by the analysis engine:
//
//	duration: 1.25s
//	crates:
//	  cargo:
//	    main:
//	      serde: {required: "^1.0", latest: "1.0.200"}
//	    dev: {}
//	    build: {}
//
// Mappings are kept as nodes so manifest order survives decoding.
type report struct {
	Duration string    `yaml:"duration"`
	Crates   yaml.Node `yaml:"crates"`
}

type crateReport struct {
	Main  yaml.Node `yaml:"main"`
	Dev   yaml.Node `yaml:"dev"`
	Build yaml.Node `yaml:"build"`
}

type dependencyReport struct {
	Required string `yaml:"required"`
	Latest   string `yaml:"latest"`
}

// FileAnalysisRepository reads analysis reports from
// <dir>/<site>/<qualifier>/<name>.yaml.
type FileAnalysisRepository struct {
	dir string
}

// NewFileAnalysisRepository creates a repository rooted at the configured analysis directory.
func NewFileAnalysisRepository(settings *entities.Settings) *FileAnalysisRepository {
	return &FileAnalysisRepository{dir: settings.AnalysisDir}
}

// Analyze loads and decodes the report for the repository.
func (it *FileAnalysisRepository) Analyze(
	ctx context.Context,
	path entities.RepoPath,
) (*entities.AnalyzeDependenciesOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := filepath.Join(it.dir, path.Site().Slug(), path.Qualifier(), path.Name()+".yaml")
	logger.Debugf("Reading analysis report %q", file)

	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w for %s", ErrReportNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis report %q: %w", file, err)
	}

	outcome, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode analysis report %q: %w", file, err)
	}
	return outcome, nil
}

// Decode parses a YAML analysis report.
func Decode(data []byte) (*entities.AnalyzeDependenciesOutcome, error) {
	var doc report
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	outcome := &entities.AnalyzeDependenciesOutcome{Crates: entities.NewCrateMap()}
	if doc.Duration != "" {
		duration, err := time.ParseDuration(doc.Duration)
		if err != nil {
			return nil, fmt.Errorf("invalid duration: %w", err)
		}
		if duration < 0 {
			return nil, fmt.Errorf("duration must not be negative, got %s", duration)
		}
		outcome.Duration = duration
	}

	err := eachPair(&doc.Crates, func(key string, value *yaml.Node) error {
		name, err := entities.NewCrateName(key)
		if err != nil {
			return err
		}

		var crate crateReport
		if decodeErr := value.Decode(&crate); decodeErr != nil {
			return fmt.Errorf("crate %q: %w", key, decodeErr)
		}

		deps := entities.NewAnalyzedDependencies()
		nodes := []*yaml.Node{&crate.Main, &crate.Dev, &crate.Build}
		for i, category := range entities.AllDependencyCategories() {
			if decodeErr := decodeCategory(nodes[i], deps.Category(category)); decodeErr != nil {
				return fmt.Errorf("crate %q, %s: %w", key, category.Title(), decodeErr)
			}
		}

		outcome.Crates.Set(name, deps)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func decodeCategory(node *yaml.Node, into *entities.DependencyMap) error {
	return eachPair(node, func(key string, value *yaml.Node) error {
		name, err := entities.NewCrateName(key)
		if err != nil {
			return err
		}

		var dep dependencyReport
		if decodeErr := value.Decode(&dep); decodeErr != nil {
			return fmt.Errorf("dependency %q: %w", key, decodeErr)
		}

		required, err := entities.ParseVersionReq(dep.Required)
		if err != nil {
			return fmt.Errorf("dependency %q: %w", key, err)
		}

		var latest *entities.Version
		if dep.Latest != "" {
			version, parseErr := entities.ParseVersion(dep.Latest)
			if parseErr != nil {
				return fmt.Errorf("dependency %q: %w", key, parseErr)
			}
			latest = &version
		}

		into.Set(name, entities.NewAnalyzedDependency(required, latest))
		return nil
	})
}

// eachPair walks a mapping node in document order. Absent and null nodes are empty.
func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
