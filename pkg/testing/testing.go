package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root when testing, so the logger writes logs/ in one
	// predictable place. Use it from a test file with
	//
	//   import (
	//     _ "energydata.io/building-energy-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
