// Package demo holds the group names demonstration procedure.
package demo

import (
	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/group"
	"github.com/m4gshm/objgroup/logger"
)

// Run maps records to their group names by the promoted Parent capability.
func Run(records []*entity.Obj) []string {
	result := group.Names(records, (*entity.Obj).GroupName)
	logger.Debugw("group names", "records", len(records), "names", result)
	return result
}

// Empty runs the procedure over a new empty collection.
func Empty() []string {
	list := []*entity.Obj{}
	return Run(list)
}
