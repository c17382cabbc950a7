package resource

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// IniSetting asserts that a key in an ini section has an exact value,
// replacing whatever is there. The file and section are created on demand.
type IniSetting struct {
	Path    string
	Section string
	Key     string
	Value   string
}

func (s *IniSetting) Name() string {
	return fmt.Sprintf("ini_setting %s [%s] %s", s.Path, s.Section, s.Key)
}

func (s *IniSetting) Apply(_ context.Context, noop bool) (Status, error) {
	cfg, err := ini.LooseLoad(s.Path)
	if err != nil {
		return StatusFailed, fmt.Errorf("loading %s: %w", s.Path, err)
	}

	key := cfg.Section(s.Section).Key(s.Key)
	if key.String() == s.Value {
		return StatusUnchanged, nil
	}
	if noop {
		return StatusChanged, nil
	}

	key.SetValue(s.Value)
	if err := cfg.SaveTo(s.Path); err != nil {
		return StatusFailed, fmt.Errorf("saving %s: %w", s.Path, err)
	}
	return StatusChanged, nil
}

// IniSubsetting asserts that one token is present inside a comma-joined
// multi-value ini key, appending it without disturbing existing tokens.
// This is how the puppetserver `reports` setting accumulates report
// processor names.
type IniSubsetting struct {
	Path      string
	Section   string
	Key       string
	Subvalue  string
	Separator string
}

func (s *IniSubsetting) Name() string {
	return fmt.Sprintf("ini_subsetting %s [%s] %s += %s", s.Path, s.Section, s.Key, s.Subvalue)
}

func (s *IniSubsetting) separator() string {
	if s.Separator == "" {
		return ","
	}
	return s.Separator
}

func (s *IniSubsetting) Apply(_ context.Context, noop bool) (Status, error) {
	cfg, err := ini.LooseLoad(s.Path)
	if err != nil {
		return StatusFailed, fmt.Errorf("loading %s: %w", s.Path, err)
	}

	key := cfg.Section(s.Section).Key(s.Key)
	tokens := splitTokens(key.String(), s.separator())
	for _, token := range tokens {
		if token == s.Subvalue {
			return StatusUnchanged, nil
		}
	}
	if noop {
		return StatusChanged, nil
	}

	tokens = append(tokens, s.Subvalue)
	key.SetValue(strings.Join(tokens, s.separator()))
	if err := cfg.SaveTo(s.Path); err != nil {
		return StatusFailed, fmt.Errorf("saving %s: %w", s.Path, err)
	}
	return StatusChanged, nil
}

func splitTokens(value, separator string) []string {
	var tokens []string
	for _, token := range strings.Split(value, separator) {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
