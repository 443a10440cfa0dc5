package cli_test

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/mevansam/textparsers/cli"
	"github.com/mevansam/textparsers/config"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("textparse", func() {

	var (
		fs     afero.Fs
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	run := func(stdin string, args ...string) error {

		stdout.Reset()
		stderr.Reset()

		root := cli.NewRootCommand(fs)
		root.SetArgs(append([]string{"--no-color"}, args...))
		root.SetIn(strings.NewReader(stdin))
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		return root.Execute()
	}

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		os.Unsetenv(config.SettingsEnvVar)
	})

	Context("normalize", func() {

		It("writes arguments in canonical form", func() {

			Expect(run("", "normalize", "-t", "map[string][]int", "b=3| 4;a= 1|2")).To(Succeed())
			Expect(stdout.String()).To(Equal("a=1|2;b=3|4\n"))
		})

		It("reads lines from the input when there are no arguments", func() {

			Expect(run("1#1#1\r\n2#3#4\n", "normalize", "--type", "graduated[int]")).To(Succeed())
			Expect(stdout.String()).To(Equal("1\n2#3#4\n"))
		})

		It("normalizes tuples", func() {

			Expect(run("", "normalize", "-t", "tuple[ int , *string ]", " (1,∅)")).To(Succeed())
			Expect(stdout.String()).To(Equal("(1,∅)\n"))
		})

		It("reports which input is invalid", func() {

			err := run("", "normalize", "-t", "[]int", "1|2", "1|x")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("2nd input: 'x' cannot be parsed as int"))
			Expect(stdout.String()).To(Equal("1|2\n"))
		})

		It("requires a type", func() {
			Expect(run("", "normalize", "1")).ToNot(Succeed())
		})

		It("rejects unknown and unsupported types", func() {

			err := run("", "normalize", "-t", "[]widget", "1")
			Expect(err).To(MatchError(ContainSubstring("unknown type 'widget'")))
		})
	})

	Context("check", func() {

		It("reports every invalid input", func() {

			err := run("1|2\nx\n3\n\n", "check", "-t", "[]int", "-w", "2")
			Expect(err).To(MatchError("1 of 4 inputs are invalid"))

			lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(4))
			Expect(lines[0]).To(Equal("OK 1|2"))
			Expect(lines[1]).To(HavePrefix("INVALID x 'x' cannot be parsed as int"))
			Expect(lines[2]).To(Equal("OK 3"))
			Expect(lines[3]).To(Equal("OK "))
		})

		It("succeeds when all inputs are valid", func() {

			Expect(run("", "check", "-t", "[3]bool", "true|false|true")).To(Succeed())
			Expect(stdout.String()).To(Equal("OK true|false|true\n"))

			Expect(run("", "check", "-t", "[3]bool", "true|false")).ToNot(Succeed())
			Expect(stdout.String()).To(ContainSubstring("array of length 3 cannot be built from 2 elements"))
		})
	})

	Context("settings", func() {

		It("loads settings files", func() {

			Expect(afero.WriteFile(fs, "/settings.yaml", []byte("collection:\n  delimiter: \",\"\n"), 0644)).To(Succeed())
			Expect(run("", "--settings", "/settings.yaml", "normalize", "-t", "[]int", "1, 2,3")).To(Succeed())
			Expect(stdout.String()).To(Equal("1,2,3\n"))
		})

		It("loads settings named by the environment", func() {

			Expect(afero.WriteFile(fs, "/env.jsonc", []byte(`{
				// pairs on separate segments
				"dictionary": { "pairsDelimiter": "&", },
			}`), 0644)).To(Succeed())
			os.Setenv(config.SettingsEnvVar, "/env.jsonc")
			defer os.Unsetenv(config.SettingsEnvVar)

			Expect(run("", "normalize", "-t", "map[string]int", "b=2&a=1")).To(Succeed())
			Expect(stdout.String()).To(Equal("a=1&b=2\n"))
		})

		It("fails on invalid settings", func() {

			Expect(afero.WriteFile(fs, "/clash.yaml", []byte("collection:\n  delimiter: \"∅\"\n"), 0644)).To(Succeed())
			err := run("", "--settings", "/clash.yaml", "types")
			Expect(err).To(MatchError(config.ErrConfiguration))
		})

		It("rejects unknown log levels", func() {
			Expect(run("", "--log-level", "loud", "types")).ToNot(Succeed())
		})
	})

	It("describes transformers", func() {

		Expect(run("", "describe", "-t", "graduated[int]")).To(Succeed())
		Expect(stdout.String()).To(Equal("Transform graduated.Value[int] as graduated values of int separated by '#'\n"))
	})

	It("lists type names", func() {

		Expect(run("", "types")).To(Succeed())
		Expect(stdout.String()).To(ContainSubstring("duration\n"))
		Expect(stdout.String()).To(ContainSubstring("tuple[T1,...,T8]"))
	})
})
