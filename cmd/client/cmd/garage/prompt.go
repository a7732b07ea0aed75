package garage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/domain/garage"
	"carcost/internal/domain/vehicle"
)

// maxShown - сколько совпадений показывать за раз
const maxShown = 15

var errNoInput = errors.New("ввод прерван")

type catalog interface {
	Makes(ctx context.Context) ([]string, error)
	Models(ctx context.Context, makeName string) ([]string, error)
}

// promptVehicle дозаполняет пустые марку, модель и год из справочника.
// Если справочник недоступен, печатается заглушка и значение вводится вручную.
func promptVehicle(ctx context.Context, cat catalog, in *bufio.Reader, out io.Writer, v garage.Vehicle) (garage.Vehicle, error) {
	var err error

	if v.Make == "" {
		makes, loadErr := cat.Makes(ctx)
		if loadErr != nil {
			fmt.Fprintln(out, output.Failed(vehicle.MakesPlaceholder))
		}
		if v.Make, err = choose(in, out, "Марка", makes); err != nil {
			return v, err
		}
	}

	if v.Model == "" {
		models, loadErr := cat.Models(ctx, v.Make)
		if loadErr != nil {
			fmt.Fprintln(out, output.Failed(vehicle.ModelsPlaceholder))
		}
		if v.Model, err = choose(in, out, "Модель", models); err != nil {
			return v, err
		}
	}

	if v.Year == "" {
		fmt.Fprint(out, "Год (необязательно): ")
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return v, err
		}
		v.Year = strings.TrimSpace(line)
	}

	return v, nil
}

// choose спрашивает значение из options: точное имя, часть имени или номер из
// последней показанной подборки. Пустой options - свободный ввод.
func choose(in *bufio.Reader, out io.Writer, label string, options []string) (string, error) {
	var shown []string

	for {
		fmt.Fprintf(out, "%s: ", label)
		line, err := in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" {
			if err != nil {
				return "", errNoInput
			}
			continue
		}

		if len(options) == 0 {
			return answer, nil
		}

		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(shown) {
			return shown[n-1], nil
		}

		for _, o := range options {
			if strings.EqualFold(o, answer) {
				return o, nil
			}
		}

		shown = matches(options, answer)
		switch len(shown) {
		case 0:
			fmt.Fprintln(out, output.Muted("Ничего не найдено"))
		case 1:
			return shown[0], nil
		default:
			for i, o := range shown {
				fmt.Fprintf(out, "  %d) %s\n", i+1, o)
			}
			fmt.Fprintln(out, output.Muted("Введите номер или уточните название"))
		}

		if err != nil {
			return "", errNoInput
		}
	}
}

func matches(options []string, part string) []string {
	part = strings.ToLower(part)

	var found []string
	for _, o := range options {
		if strings.Contains(strings.ToLower(o), part) {
			found = append(found, o)
			if len(found) == maxShown {
				break
			}
		}
	}
	return found
}
