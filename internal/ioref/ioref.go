// Package ioref loads the reference tables of a conversion run from YAML
// files: site coordinates (sites.yaml), the species and life-stage
// vocabulary (vocabulary.yaml) and the measurement-type dictionary
// (measurement_types.yaml).
//
// Loaded data lives for one run and is passed explicitly to the linker.
package ioref

import (
	"os"
	"path/filepath"

	"github.com/gnames/gndwc/pkg/ref"
	"gopkg.in/yaml.v3"
)

// Data bundles the reference tables of one run.
type Data struct {
	Sites            ref.Sites
	Vocabulary       *ref.Vocabulary
	MeasurementTypes ref.MeasurementTypes
}

const (
	sitesFile = "sites.yaml"
	vocabFile = "vocabulary.yaml"
	typesFile = "measurement_types.yaml"
)

// Load reads all reference tables from dir. Every table is validated
// fail-fast; a broken reference table corrupts every downstream join.
func Load(dir string) (*Data, error) {
	sites, err := loadSites(filepath.Join(dir, sitesFile))
	if err != nil {
		return nil, err
	}

	vocab, err := loadVocabulary(filepath.Join(dir, vocabFile))
	if err != nil {
		return nil, err
	}

	types, err := loadMeasurementTypes(filepath.Join(dir, typesFile))
	if err != nil {
		return nil, err
	}

	return &Data{
		Sites:            sites,
		Vocabulary:       vocab,
		MeasurementTypes: types,
	}, nil
}

type sitesDoc struct {
	Sites []ref.Site `yaml:"sites"`
}

func loadSites(path string) (ref.Sites, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, SitesError(path, err)
	}

	var doc sitesDoc
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return nil, SitesError(path, err)
	}

	res := make(ref.Sites, len(doc.Sites))
	for _, s := range doc.Sites {
		if s.LocationID == "" {
			return nil, SitesFieldError(path, "location_id")
		}
		if _, ok := res[s.LocationID]; ok {
			return nil, SitesDuplicateError(path, s.LocationID)
		}
		res[s.LocationID] = s
	}
	return res, nil
}

type vocabularyDoc struct {
	Species    []ref.SpeciesEntry `yaml:"species"`
	LifeStages map[string]string  `yaml:"life_stages"`
}

func loadVocabulary(path string) (*ref.Vocabulary, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, VocabularyError(path, err)
	}

	var doc vocabularyDoc
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return nil, VocabularyError(path, err)
	}

	species := make(map[string]ref.SpeciesEntry, len(doc.Species))
	for _, sp := range doc.Species {
		if sp.Code == "" {
			return nil, VocabularyFieldError(path, "code")
		}
		if sp.ScientificName == "" && !sp.Unknown {
			return nil, VocabularyFieldError(path,
				"scientific_name for code "+sp.Code)
		}
		if _, ok := species[sp.Code]; ok {
			return nil, VocabularyDuplicateError(path, sp.Code)
		}
		species[sp.Code] = sp
	}

	stages := doc.LifeStages
	if len(stages) == 0 {
		stages = ref.DefaultLifeStages()
	}

	return &ref.Vocabulary{
		Species:    species,
		LifeStages: stages,
	}, nil
}

type typesDoc struct {
	MeasurementTypes []ref.MeasurementType `yaml:"measurement_types"`
}

func loadMeasurementTypes(path string) (ref.MeasurementTypes, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, MeasurementTypesError(path, err)
	}

	var doc typesDoc
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return nil, MeasurementTypesError(path, err)
	}

	res := make(ref.MeasurementTypes, len(doc.MeasurementTypes))
	for _, mt := range doc.MeasurementTypes {
		if mt.Name == "" {
			return nil, MeasurementTypesFieldError(path, "name")
		}
		if _, ok := res[mt.Name]; ok {
			return nil, MeasurementTypesDuplicateError(path, mt.Name)
		}
		res[mt.Name] = mt
	}
	return res, nil
}
