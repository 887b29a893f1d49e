package bean

import (
	"context"
	"reflect"

	"github.com/zoobzio/capitan"
)

// Bean provider signals.
var (
	// BeanLoaded is emitted after SetBean reloads the models.
	BeanLoaded = capitan.NewSignal(
		"pectin.bean.loaded",
		"Bean loaded into models",
	)

	// BeanCommitted is emitted after Commit.
	BeanCommitted = capitan.NewSignal(
		"pectin.bean.committed",
		"Buffered models committed to bean",
	)

	// BeanReverted is emitted after Revert.
	BeanReverted = capitan.NewSignal(
		"pectin.bean.reverted",
		"Models reverted to checkpoint",
	)
)

// Field keys for bean events.
var (
	// KeyBean is the bean type name.
	KeyBean = capitan.NewStringKey("bean")

	// KeyModels is the number of property paths tracked by the provider.
	KeyModels = capitan.NewIntKey("models")
)

func emitLoaded(typ reflect.Type, models int) {
	capitan.Emit(context.Background(), BeanLoaded,
		KeyBean.Field(typ.String()),
		KeyModels.Field(models),
	)
}

func emitCommitted(typ reflect.Type, models int) {
	capitan.Emit(context.Background(), BeanCommitted,
		KeyBean.Field(typ.String()),
		KeyModels.Field(models),
	)
}

func emitReverted(typ reflect.Type, models int) {
	capitan.Emit(context.Background(), BeanReverted,
		KeyBean.Field(typ.String()),
		KeyModels.Field(models),
	)
}
