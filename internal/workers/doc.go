/*
Package workers sizes and runs small bounded worker pools.

# Sizing

Go sets GOMAXPROCS from the container CPU limit, while runtime.NumCPU still
reports the host. Count scales GOMAXPROCS by a task multiplier so pools stay
inside the limit:

	n := workers.ForIO(8) // 2 per CPU, at most 8

Set PLS_WORKERS to pin the count:

	PLS_WORKERS=4 plsdump *.pls

# Running

Map fans a slice out over n goroutines and collects the results in input
order, so callers can print them as if they had been produced sequentially:

	results := workers.Map(files, workers.ForIO(len(files)), decodeFile)
*/
package workers
