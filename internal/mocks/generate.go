package mocks

//go:generate mockery --name ScheduleStore --srcpkg github.com/aevon-lab/interval/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
