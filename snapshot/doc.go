/*
Package snapshot serializes and deep-copies arbitrary value graphs.

Snapshots are independent of the lifecycle of the structure they were taken
from: a snapshot of the elements of an rmq.Rmq stays valid after the Rmq has
been modified or destroyed.

Values are encoded with a Codec. Gob is the default; it handles any value
graph of exported fields. YAML produces human-readable output.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package snapshot
