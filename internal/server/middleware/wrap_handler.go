package middleware

import (
	"fmt"
	"net/http"
	"reflect"
	"runtime"

	"github.com/labstack/echo/v4"
)

// WrapHandler turns func(echo.Context, Req) (Res, error) into an echo
// handler: Req is filled by Bind and Res is written as JSON with status 200.
func WrapHandler(f any) echo.HandlerFunc {
	handler, err := wrapHandler(f)
	if err != nil {
		panic(err)
	}

	return handler
}

func wrapHandler(f any) (echo.HandlerFunc, error) {
	fTyp := reflect.TypeOf(f)
	fVal := reflect.ValueOf(f)

	if fVal.Kind() != reflect.Func {
		return nil, fmt.Errorf("invalid function passed to wrap handler: %v", fVal)
	}
	fName := runtime.FuncForPC(fVal.Pointer()).Name()

	if numIn := fTyp.NumIn(); numIn != 2 {
		return nil, fmt.Errorf("[%s] invalid function arguments length: %d", fName, numIn)
	}

	ctxInterface := reflect.TypeOf((*echo.Context)(nil)).Elem()
	if !fTyp.In(0).Implements(ctxInterface) {
		return nil, fmt.Errorf("[%s] first argument must has type echo.Context", fName)
	}

	if kind := fTyp.In(1).Kind(); kind != reflect.Struct {
		return nil, fmt.Errorf("[%s] second argument must has type struct: %v", fName, kind)
	}

	if numOut := fTyp.NumOut(); numOut != 2 {
		return nil, fmt.Errorf("[%s] invalid function returns length: %d", fName, numOut)
	}

	errorInterface := reflect.TypeOf((*error)(nil)).Elem()
	if last := fTyp.Out(1); !last.Implements(errorInterface) {
		return nil, fmt.Errorf("[%s] last return argument must has type error: %v", fName, last)
	}

	reqType := fTyp.In(1)

	return func(c echo.Context) error {
		req := reflect.New(reqType)
		if err := Bind(c, req.Interface()); err != nil {
			return err
		}

		res := fVal.Call([]reflect.Value{reflect.ValueOf(c), req.Elem()})
		if errVal := res[1]; !errVal.IsNil() {
			err, ok := errVal.Interface().(error)
			if !ok {
				return fmt.Errorf("could not cast error value: %+v", errVal.Interface())
			}
			return err
		}

		if c.Response().Committed {
			return nil
		}
		return c.JSON(http.StatusOK, res[0].Interface())
	}, nil
}
