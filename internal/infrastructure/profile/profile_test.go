package profile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"djtracker/internal/domain/entity"
	"djtracker/internal/infrastructure/profile"
)

func TestFileProfile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "profile.yaml")
	rq.NoError(os.WriteFile(path, []byte(`
djName: " KAMI "
infinitasId: C-1234-5678-9012
spClass: 十段
dpClass: 皆伝
area: TOKYO
`), 0o600))

	p, err := profile.NewFile(path).Profile(ctx)
	rq.NoError(err)
	rq.Equal(entity.Profile{
		DJName:      "KAMI",
		InfinitasID: "C-1234-5678-9012",
		SPClass:     "十段",
		DPClass:     "皆伝",
		Area:        "TOKYO",
	}, p)

	p, err = profile.NewFile("").Profile(ctx)
	rq.NoError(err)
	rq.Zero(p)

	_, err = profile.NewFile(filepath.Join(dir, "missing.yaml")).Profile(ctx)
	rq.Error(err)

	broken := filepath.Join(dir, "broken.yaml")
	rq.NoError(os.WriteFile(broken, []byte("djName: [unterminated"), 0o600))
	_, err = profile.NewFile(broken).Profile(ctx)
	rq.Error(err)
}
