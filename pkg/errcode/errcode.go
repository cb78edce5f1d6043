package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Reference table errors
	RefSitesError
	RefSpeciesVocabularyError
	RefLifeStagesError
	RefMeasurementTypesError

	// Survey input errors
	SurveyOpenError
	SurveyParseError
	SurveyDatabaseError

	// Linker errors
	VocabularyMappingError
	AmbiguousMatchError
	DuplicateKeyError
	ReferentialIntegrityError

	// Resolver errors
	ResolverRequestError
	ResolverResponseError

	// Archive errors
	ArchiveWriteError
)
