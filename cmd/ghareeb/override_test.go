package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mushafapp/ghareeb/internal/align"
	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/override"
	"github.com/mushafapp/ghareeb/internal/testutil"
)

func TestScopeFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    ScopeFlag
		wantErr bool
	}{
		{
			name:  "whole page",
			value: "whole_page",
			want:  ScopeFlag(override.ScopeWholePage),
		},
		{
			name:  "line range",
			value: "line_range",
			want:  ScopeFlag(override.ScopeLineRange),
		},
		{
			name:  "custom selection",
			value: "custom_selection",
			want:  ScopeFlag(override.ScopeCustomSelection),
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag ScopeFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid value")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
		})
	}
}

func TestScopeFlag_String(t *testing.T) {
	flag := ScopeFlag(override.ScopeLineRange)
	assert.Equal(t, "line_range", flag.String())
}

func TestScopeFlag_Type(t *testing.T) {
	flag := ScopeFlag(override.ScopeWholePage)
	assert.Equal(t, "scope", flag.Type())
}

func TestBuildOperation(t *testing.T) {
	tests := []struct {
		name        string
		lockKeys    []string
		shiftAmount int
		rankSpecs   []string
		want        override.Operation
		wantErr     string
	}{
		{
			name:     "locked order",
			lockKeys: []string{"1_2_3", "1_2_4"},
			want:     override.LockedOrder{Keys: []string{"1_2_3", "1_2_4"}},
		},
		{
			name:        "offset shift",
			shiftAmount: -1,
			want:        override.OffsetShift{Amount: -1},
		},
		{
			name:      "rebuild with ranks",
			rankSpecs: []string{"1_2_3=2", "1_2_4=1"},
			want: override.RebuildIndices{Ranks: []override.KeyRank{
				{Key: "1_2_3", Rank: 2},
				{Key: "1_2_4", Rank: 1},
			}},
		},
		{
			name:    "no operation",
			wantErr: "exactly one of",
		},
		{
			name:        "two operations",
			lockKeys:    []string{"1_2_3"},
			shiftAmount: 1,
			wantErr:     "exactly one of",
		},
		{
			name:      "malformed rank",
			rankSpecs: []string{"1_2_3"},
			wantErr:   "expected key=rank",
		},
		{
			name:      "non numeric rank",
			rankSpecs: []string{"1_2_3=first"},
			wantErr:   "invalid rank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildOperation(tt.lockKeys, tt.shiftAmount, tt.rankSpecs)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverrideSetCommand_LineRangeNumbering(t *testing.T) {
	configFile = testutil.SetupTestConfig(t, t.TempDir())
	defer func() { configFile = "" }()

	// `page words` numbers lines from 1; the same number on --line-start
	// and --line-end must target that printed line.
	cmd := newOverrideSetCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"5",
		"--scope", "line_range",
		"--line-start", "2", "--line-end", "2",
		"--lock", "k2,k1",
	})
	require.NoError(t, cmd.Execute())

	cfg, err := loadConfig()
	require.NoError(t, err)
	repo, err := override.NewYAMLRepository(cfg.OverridesDirectory)
	require.NoError(t, err)
	saved, err := repo.FindByPage(5)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 1, saved[0].LineStart)
	assert.Equal(t, 1, saved[0].LineEnd)

	sequence := []align.SequenceItem{
		{Entry: glossary.Entry{UniqueKey: "a"}, Line: 0, Token: 0},
		{Entry: glossary.Entry{UniqueKey: "k1"}, Line: 1, Token: 0},
		{Entry: glossary.Entry{UniqueKey: "k2"}, Line: 1, Token: 4},
	}
	applied := override.ApplyAll(sequence, saved)

	var keys []string
	for _, item := range applied {
		keys = append(keys, item.Entry.UniqueKey)
	}
	assert.Equal(t, []string{"a", "k2", "k1"}, keys)
}

func TestNewOverrideCommand(t *testing.T) {
	cmd := newOverrideCommand()

	assert.Equal(t, "override", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewOverrideSetCommand(t *testing.T) {
	cmd := newOverrideSetCommand()

	assert.Equal(t, "set <page>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("scope"))
	assert.NotNil(t, cmd.Flags().Lookup("lock"))
	assert.NotNil(t, cmd.Flags().Lookup("shift"))
	assert.NotNil(t, cmd.Flags().Lookup("rank"))
}
