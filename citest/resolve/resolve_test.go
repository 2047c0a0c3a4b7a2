package resolve_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tsresolve/tsconfig/pkg/tsconfig"
)

// write creates a file under dir, making parent directories as needed.
func write(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Resolving real project layouts", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Describe("a project extending a shared base", func() {
		It("folds the base underneath the project config", func() {
			write(dir, "base.json", `{
				// the shared defaults
				"compilerOptions": {"strict": false, "target": "ES5", "sourceMap": true}
			}`)
			root := write(dir, "tsconfig.json", `{
				"extends": "./base.json",
				"compilerOptions": {"strict": true},
			}`)

			cfg, err := tsconfig.ParseFile(root)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.CompilerOptions).NotTo(BeNil())
			Expect(*cfg.CompilerOptions.Strict).To(BeTrue())
			Expect(string(*cfg.CompilerOptions.Target)).To(Equal("ES5"))
			Expect(*cfg.CompilerOptions.SourceMap).To(BeTrue())
		})

		It("replaces include wholesale instead of concatenating", func() {
			write(dir, "base.json", `{"include": ["lib"]}`)
			root := write(dir, "tsconfig.json", `{"extends": "./base.json", "include": ["src"]}`)

			cfg, err := tsconfig.ParseFile(root)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Include).To(Equal([]string{"src"}))
		})
	})

	Describe("a monorepo extending a node_modules package", func() {
		It("climbs ancestor directories to find the package", func() {
			write(dir, "node_modules/@acme/base/tsconfig.json",
				`{"compilerOptions": {"module": "ES2020", "esModuleInterop": true}}`)
			root := write(dir, "packages/web/tsconfig.json",
				`{"extends": "@acme/base", "compilerOptions": {"module": "ESNext"}}`)

			cfg, err := tsconfig.ParseFile(root)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(*cfg.CompilerOptions.Module)).To(Equal("ESNext"))
			Expect(*cfg.CompilerOptions.EsModuleInterop).To(BeTrue())
		})
	})

	Describe("a broken extends chain", func() {
		It("reports NotFound for a missing target", func() {
			root := write(dir, "tsconfig.json", `{"extends": "./gone.json"}`)

			_, err := tsconfig.ParseFile(root)
			var nf *tsconfig.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.Specifier).To(Equal("./gone.json"))
		})

		It("reports the full cycle for circular extends", func() {
			write(dir, "a.json", `{"extends": "./b.json"}`)
			write(dir, "b.json", `{"extends": "./a.json"}`)

			_, err := tsconfig.ParseFile(filepath.Join(dir, "a.json"))
			var cyc *tsconfig.CircularExtendsError
			Expect(errors.As(err, &cyc)).To(BeTrue())
			Expect(cyc.Chain).To(HaveLen(3))
			Expect(cyc.Chain[0]).To(Equal(cyc.Chain[2]))
		})

		It("reports parse errors with the offending file's position", func() {
			root := write(dir, "tsconfig.json", `{"compilerOptions": {`)

			_, err := tsconfig.ParseFile(root)
			var perr *tsconfig.ParseError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Path).To(HaveSuffix("tsconfig.json"))
			Expect(perr.Line).To(BeNumerically(">=", 1))
		})
	})

	Describe("forward-compatible fields", func() {
		It("carries unknown keys through resolution untouched", func() {
			write(dir, "base.json", `{"watchOptions": {"watchFile": "useFsEvents"}}`)
			root := write(dir, "tsconfig.json", `{"extends": "./base.json"}`)

			cfg, err := tsconfig.ParseFile(root)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Extra).To(HaveKey("watchOptions"))
			watch := cfg.Extra["watchOptions"].(map[string]any)
			Expect(watch["watchFile"]).To(Equal("useFsEvents"))
		})
	})
})
