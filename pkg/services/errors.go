package services

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	dataPathRequiredCode  = "DATA_PATH_REQUIRED"
	profileLoadFailedCode = "PROFILE_LOAD_FAILED"
	articleReadFailedCode = "ARTICLE_READ_FAILED"
	articlesDirFailedCode = "ARTICLES_DIR_READ_FAILED"
)

func articleReadError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("cannot parse article file %s: %v", path, err)).
		WithTextCode(articleReadFailedCode)
}

func articlesDirError(dir string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("cannot read articles directory %s: %v", dir, err)).
		WithTextCode(articlesDirFailedCode)
}

func profileLoadError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("cannot read profile config %s: %v", path, err)).
		WithTextCode(profileLoadFailedCode)
}

func dataPathRequiredError() error {
	return goerrors.Wrap(fmt.Errorf("data path is blank"), goerrors.CategoryValidation, "blog data path is required").
		WithTextCode(dataPathRequiredCode)
}
