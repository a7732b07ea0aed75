package garage

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"carcost/internal/app/client"
	"carcost/internal/domain/garage"
	"carcost/internal/infrastructure/storage/memory"
)

// execGarage выполняет "garage <args>" над App с гаражом в памяти
func execGarage(t *testing.T, store *garage.Store, args ...string) (string, error) {
	t.Helper()

	addMake, addModel, addYear, clearYes = "", "", "", false
	t.Cleanup(func() { addMake, addModel, addYear, clearYes = "", "", "", false })

	app := client.NewWithServices(store, nil, slog.Default())
	ctx := client.WithApp(context.Background(), app)

	var out bytes.Buffer
	GarageCmd.SetOut(&out)
	GarageCmd.SetErr(io.Discard)
	GarageCmd.SetArgs(args)

	err := GarageCmd.ExecuteContext(ctx)
	return out.String(), err
}

func seededStore(t *testing.T, items ...garage.Vehicle) *garage.Store {
	t.Helper()

	store := garage.NewStore(memory.New(), "garage", slog.Default())
	require.NoError(t, store.Save(context.Background(), items))
	return store
}

func TestRemoveCmd(t *testing.T) {
	civic := garage.Vehicle{Make: "HONDA", Model: "Civic", Year: "2020"}
	corolla := garage.Vehicle{Make: "TOYOTA", Model: "Corolla"}

	tests := []struct {
		name    string
		args    []string
		wantOut string
		want    []garage.Vehicle
	}{
		{
			name:    "existing index",
			args:    []string{"0"},
			wantOut: "Автомобиль 0 удален\n",
			want:    []garage.Vehicle{corolla},
		},
		{
			name:    "index past the end",
			args:    []string{"5"},
			wantOut: "Автомобиля с номером 5 нет, гараж не изменился\n",
			want:    []garage.Vehicle{civic, corolla},
		},
		{
			name:    "negative index",
			args:    []string{"--", "-1"},
			wantOut: "Автомобиля с номером -1 нет, гараж не изменился\n",
			want:    []garage.Vehicle{civic, corolla},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(t, civic, corolla)

			out, err := execGarage(t, store, append([]string{"remove"}, tt.args...)...)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.want, store.Load(context.Background()))
		})
	}
}

func TestRemoveCmd_NotANumber(t *testing.T) {
	store := seededStore(t, garage.Vehicle{Make: "HONDA", Model: "Civic"})

	_, err := execGarage(t, store, "remove", "first")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "целым числом")
	assert.Len(t, store.Load(context.Background()), 1)
}

func TestClearCmd(t *testing.T) {
	store := seededStore(t, garage.Vehicle{Make: "HONDA", Model: "Civic"})

	_, err := execGarage(t, store, "clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Len(t, store.Load(context.Background()), 1)

	out, err := execGarage(t, store, "clear", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Гараж очищен\n", out)
	assert.Empty(t, store.Load(context.Background()))
}

func TestAddCmd(t *testing.T) {
	store := seededStore(t, garage.Vehicle{Make: "TOYOTA", Model: "Corolla"})

	out, err := execGarage(t, store, "add", "--make", " HONDA ", "--model", "Civic", "--year", "2020")
	require.NoError(t, err)
	assert.Contains(t, out, "HONDA Civic 2020")
	assert.Contains(t, out, "в гараже: 2")

	items := store.Load(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, garage.Vehicle{Make: "HONDA", Model: "Civic", Year: "2020"}, items[0])
}

func TestAddCmd_FlagsRequiredWithoutTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}

	store := seededStore(t)

	_, err := execGarage(t, store, "add", "--make", "HONDA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "укажите --make и --model")
	assert.Empty(t, store.Load(context.Background()))
}
