package scoring

import "testing"

func TestDefaultOptionsValidates(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("DefaultOptions().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsImplausibleMaxTypos(t *testing.T) {
	opts := DefaultOptions()
	bad := uint16(1 << 15 + 1)
	opts.MaxTypos = &bad

	err := opts.Validate()
	if err == nil {
		t.Fatal("expected Validate to reject an implausibly large MaxTypos")
	}
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("err = %T, want *ConfigError", err)
	}
	if cfgErr.Field != "MaxTypos" {
		t.Errorf("Field = %q, want MaxTypos", cfgErr.Field)
	}
}

func TestValidateAcceptsZeroMaxTypos(t *testing.T) {
	opts := DefaultOptions()
	zero := uint16(0)
	opts.MaxTypos = &zero
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() with MaxTypos=0 = %v, want nil", err)
	}
}

func TestPerCharMax(t *testing.T) {
	s := DefaultScoring()
	want := s.MatchScore + s.DelimiterBonus + s.CapitalizationBonus + s.MatchingCaseBonus
	if got := s.PerCharMax(); got != want {
		t.Errorf("PerCharMax() = %d, want %d", got, want)
	}
}

func TestMaxCellScore(t *testing.T) {
	s := DefaultScoring()
	width := 32
	want := uint32(width)*uint32(s.PerCharMax()) + uint32(s.PrefixBonus) + uint32(s.ExactMatchBonus)
	if got := s.MaxCellScore(width); got != want {
		t.Errorf("MaxCellScore(%d) = %d, want %d", width, got, want)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "MaxTypos", Message: "implausibly large; check for a sign error"}
	want := "fuzzymatch: invalid option MaxTypos: implausibly large; check for a sign error"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
