package account

import (
	"github.com/m04kA/wedding-reservation-service/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
