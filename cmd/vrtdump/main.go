/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command vrtdump decodes a single VRT packet from stdin and prints its
// prologue and CIF0 fields. It exists to exercise the vrt package from a
// real binary, not to be a full protocol analyzer.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geontech/vrtgo/vrt"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "vrtdump",
	Short: "Decode a VITA 49.2 packet read from stdin",
	RunE:  runDump,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
}

func configureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	configureVerbosity()

	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	h, err := vrt.UnpackHeaderFrom(buf)
	if err != nil {
		return fmt.Errorf("unpacking header: %w", err)
	}
	log.Debugf("header: type=%s class-id-enable=%v packet-count=%d words=%d",
		h.PacketType(), h.ClassIDEnable(), h.PacketCount(), h.PacketSize())

	switch {
	case h.PacketType().IsSignalData():
		p, err := vrt.UnpackSignalDataPacketFrom(buf)
		if err != nil {
			return fmt.Errorf("unpacking signal-data packet: %w", err)
		}
		dumpSignalData(p)
		dumpVerbose(p)
	case h.PacketType().IsContext():
		p, err := vrt.UnpackContextPacketFrom(buf)
		if err != nil {
			return fmt.Errorf("unpacking context packet: %w", err)
		}
		dumpContext(p)
		dumpVerbose(p)
	case h.PacketType().IsCommand():
		p, err := vrt.UnpackCommandPacketFrom(buf)
		if err != nil {
			return fmt.Errorf("unpacking command packet: %w", err)
		}
		dumpCommand(p)
		dumpVerbose(p)
	default:
		return fmt.Errorf("unrecognized packet type %s", h.PacketType())
	}
	return nil
}

// dumpVerbose spews the full decoded packet struct when -v is set, the same
// way pshark spew.Dumps a decoded PTP message for manual inspection.
func dumpVerbose(p vrt.Packet) {
	if !verboseFlag {
		return
	}
	spew.Dump(p)
}

func dumpSignalData(p vrt.SignalDataPacket) {
	fmt.Printf("signal-data: size=%d stream-id=%v trailer-included=%v payload-bytes=%d\n",
		p.Size(), p.StreamID, p.TrailerIncluded, len(p.Payload))
	if p.TrailerIncluded {
		fmt.Printf("trailer: sample-frame=%v valid-data=%v\n", p.Trailer.SampleFrame, p.Trailer.ValidData)
	}
}

func dumpContext(p vrt.ContextPacket) {
	fmt.Printf("context: size=%d stream-id=%d\n", p.Size(), p.StreamID)
	dumpCIF0(p.CIF0)
}

func dumpCommand(p vrt.CommandPacket) {
	fmt.Printf("command: size=%d stream-id=%d message-id=%d cam-role=%s\n",
		p.Size(), p.StreamID, p.MessageID, p.CAM.Role(p.AcknowledgePacket, p.Cancellation))
	dumpCIF0(p.CIF0)
}

func dumpCIF0(c vrt.CIF0) {
	if c.Bandwidth.HasValue() {
		fmt.Printf("  bandwidth: %.3f Hz\n", c.Bandwidth.Value())
	}
	if c.RFReferenceFrequency.HasValue() {
		fmt.Printf("  rf-reference-frequency: %.3f Hz\n", c.RFReferenceFrequency.Value())
	}
	if c.SampleRate.HasValue() {
		fmt.Printf("  sample-rate: %.3f Hz\n", c.SampleRate.Value())
	}
	if c.Gain.HasValue() {
		g := c.Gain.Value()
		fmt.Printf("  gain: stage1=%.2f stage2=%.2f\n", g.Stage1, g.Stage2)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
