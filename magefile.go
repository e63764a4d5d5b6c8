//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/rosjava/android-apps/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}

	goExecutableName  = "go"
	cliExecutableName = "create-app"
)

func init() {
	var err error

	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}

	if specifiedCliExe := os.Getenv("CREATE_APP_EXE"); specifiedCliExe != "" {
		cliExecutableName = specifiedCliExe
	} else {
		if cliExecutableName, err = filepath.Abs(cliExecutableName); err != nil {
			panic(err)
		}
	}
}

// buildCli builds create-app executable with extra linker flags.
func buildCli(extraLdflags ...string) error {
	buildLdflags := append(append([]string{}, ldflags...), extraLdflags...)
	args := []string{
		"build", "-o", cliExecutableName,
		"-ldflags", strings.Join(buildLdflags, " "),
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath,
	}
	if err := sh.RunWith(getBuildEnvironment(), goExecutableName, args...); err != nil {
		return fmt.Errorf("failed to build create-app executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Building release create-app executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release create-app...")

	return buildCli("-s", "-w")
}

// Building debug create-app executable.
func (Build) Debug() error {
	fmt.Println("Building debug create-app...")

	return buildCli()
}

type Lint mg.Namespace

// Run golang linters.
func (Lint) Golang() error {
	fmt.Println("Running go vet...")

	return sh.RunV(goExecutableName, "vet", "./...")
}

type Unit mg.Namespace

// Run unit tests.
func (Unit) Default() error {
	fmt.Println("Running unit tests...")

	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	return sh.RunV(goExecutableName, append(args, "./...")...)
}

// Run unit tests with coverage report.
func (Unit) Coverage() error {
	fmt.Println("Running unit tests with coverage...")

	return sh.RunV(goExecutableName, "test", "-coverprofile=coverage.out", "./...")
}

// Run all checks.
func Test() {
	mg.SerialDeps(Lint.Golang, Unit.Default)
}

// Cleanup directory.
func Clean() {
	fmt.Println("Cleaning directory...")

	os.Remove(cliExecutableName)
	os.Remove("coverage.out")
}

// getBuildEnvironment return map with build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
	}
}
