package config_test

import (
	"os"

	"github.com/spf13/afero"

	"github.com/mevansam/textparsers/config"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("settings", func() {

	Context("validation", func() {

		It("accepts the default settings", func() {
			Expect(config.DefaultStore().Validate()).To(Succeed())
		})

		It("rejects special characters that are not distinct", func() {

			s := config.DefaultCollectionSettings()
			s.NullMarker = '|'
			err := s.Validate()
			Expect(err).To(MatchError(config.ErrConfiguration))
			Expect(err.Error()).To(ContainSubstring("delimiter and null marker are both '|'"))

			d := config.DefaultDictionarySettings()
			d.KeyValueDelimiter = ';'
			Expect(d.Validate()).To(MatchError(config.ErrConfiguration))
		})

		It("allows equal borders but not borders equal to other characters", func() {

			s := config.DefaultDeconstructableSettings().WithBorders('/', '/')
			Expect(s.Validate()).To(Succeed())

			s = config.DefaultDeconstructableSettings().WithBorders(';', ')')
			Expect(s.Validate()).To(MatchError(config.ErrConfiguration))

			s = config.DefaultDeconstructableSettings().WithoutBorders()
			Expect(s.Validate()).To(Succeed())
		})

		It("requires every special character", func() {
			s := config.DefaultGraduatedSettings()
			s.Escape = 0
			Expect(s.Validate()).To(MatchError(config.ErrConfiguration))
		})
	})

	Context("fingerprints", func() {

		It("identifies equal shapes by equal fingerprints", func() {

			a := config.DefaultDeconstructableSettings()
			b := config.DefaultDeconstructableSettings()
			Expect(a.Fingerprint()).To(Equal(b.Fingerprint()))

			c := a.WithBorders('{', '}')
			Expect(c.Fingerprint()).ToNot(Equal(a.Fingerprint()))

			d := a
			d.StrictBorders = true
			Expect(d.Fingerprint()).ToNot(Equal(a.Fingerprint()))
		})
	})

	Context("loading", func() {

		var (
			fs afero.Fs
		)

		BeforeEach(func() {
			fs = afero.NewMemMapFs()
		})

		It("loads yaml settings and keeps defaults for missing values", func() {

			Expect(afero.WriteFile(fs, "/etc/textparsers.yml", []byte(`
collection:
  delimiter: ","
dictionary:
  behaviour: throw
tuple:
  start: ""
  end: ""
graduated:
  nullMarker: "␀"
`), 0644)).To(Succeed())

			store, err := config.Load(fs, "/etc/textparsers.yml")
			Expect(err).ToNot(HaveOccurred())
			Expect(store.Collection.Delimiter).To(Equal(','))
			Expect(store.Collection.Escape).To(Equal('\\'))
			Expect(store.Dictionary.Behaviour).To(Equal(config.ThrowOnDuplicateKey))
			Expect(store.Tuple.Start).To(Equal(rune(0)))
			Expect(store.Tuple.End).To(Equal(rune(0)))
			Expect(store.Graduated.NullMarker).To(Equal('␀'))
			Expect(store.Deconstructable).To(Equal(config.DefaultDeconstructableSettings()))
		})

		It("loads json settings with comments", func() {

			Expect(afero.WriteFile(fs, "/etc/textparsers.jsonc", []byte(`{
  // shapes use braces
  "deconstructable": { "start": "{", "end": "}", "delimiter": "_", },
  "enum": { "caseSensitive": true },
}`), 0644)).To(Succeed())

			store, err := config.Load(fs, "/etc/textparsers.jsonc")
			Expect(err).ToNot(HaveOccurred())
			Expect(store.Deconstructable.Start).To(Equal('{'))
			Expect(store.Deconstructable.End).To(Equal('}'))
			Expect(store.Deconstructable.Delimiter).To(Equal('_'))
			Expect(store.Enum.CaseSensitive).To(BeTrue())
			Expect(store.Enum.AllowNumerics).To(BeTrue())
		})

		It("rejects invalid settings files", func() {

			Expect(afero.WriteFile(fs, "/bad.yaml", []byte("collection:\n  delimiter: \"||\"\n"), 0644)).To(Succeed())
			_, err := config.Load(fs, "/bad.yaml")
			Expect(err).To(MatchError(config.ErrConfiguration))

			Expect(afero.WriteFile(fs, "/clash.yaml", []byte("collection:\n  delimiter: \"∅\"\n"), 0644)).To(Succeed())
			_, err = config.Load(fs, "/clash.yaml")
			Expect(err).To(MatchError(config.ErrConfiguration))

			Expect(afero.WriteFile(fs, "/settings.toml", []byte(""), 0644)).To(Succeed())
			_, err = config.Load(fs, "/settings.toml")
			Expect(err).To(HaveOccurred())

			_, err = config.Load(fs, "/missing.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("falls back to defaults when no settings file is named", func() {

			os.Unsetenv(config.SettingsEnvVar)
			store, err := config.LoadFromEnv(fs)
			Expect(err).ToNot(HaveOccurred())
			Expect(store).To(Equal(config.DefaultStore()))

			Expect(afero.WriteFile(fs, "/env.yaml", []byte("keyValue:\n  delimiter: \":\"\n"), 0644)).To(Succeed())
			os.Setenv(config.SettingsEnvVar, "/env.yaml")
			defer os.Unsetenv(config.SettingsEnvVar)

			store, err = config.LoadFromEnv(fs)
			Expect(err).ToNot(HaveOccurred())
			Expect(store.KeyValue.Delimiter).To(Equal(':'))
		})
	})
})
