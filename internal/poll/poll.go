// Package poll orchestrates the per-device pipeline: session, command
// collection, analysis, scoring, and the merge into one network report.
package poll

import (
	"fmt"
	"sync"
	"time"

	"routehealth/internal/analyze"
	"routehealth/internal/inventory"
	"routehealth/internal/logger"
	"routehealth/internal/parse"
	"routehealth/internal/score"
	"routehealth/internal/session"
	"routehealth/internal/util"
)

// DefaultConcurrency is how many devices are polled in flight.
const DefaultConcurrency = 5

// Runner is an open device session the poller can drive. Satisfied by
// *session.Session; tests substitute scripted fakes.
type Runner interface {
	Run(cmd string) (string, error)
	Close() error
}

// Opener establishes a session to one device.
type Opener func(target session.Target) (Runner, error)

// Poller runs the device pipeline over a bounded worker pool.
type Poller struct {
	open        Opener
	analyzer    *analyze.Analyzer
	concurrency int
	log         logger.Logger
}

// Options configures a Poller.
type Options struct {
	Opener      Opener
	Analyzer    *analyze.Analyzer
	Concurrency int
	Log         logger.Logger
}

// New builds a Poller. The Opener is required; everything else has
// working defaults.
func New(opts Options) *Poller {
	p := &Poller{
		open:        opts.Opener,
		analyzer:    opts.Analyzer,
		concurrency: opts.Concurrency,
		log:         opts.Log,
	}
	if p.analyzer == nil {
		p.analyzer = analyze.New()
	}
	if p.concurrency < 1 {
		p.concurrency = DefaultConcurrency
	}
	if p.log == nil {
		p.log = logger.Noop()
	}
	return p
}

// Poll runs the pipeline for every device in the testbed and merges
// the results. Devices are independent: a hung or failed device never
// blocks or aborts the others, and every device appears in the report.
func (p *Poller) Poll(tb *inventory.Testbed) *NetworkReport {
	start := time.Now()

	tasks := make(chan inventory.Device)
	results := make(chan *DeviceRecord)

	var wg sync.WaitGroup
	for i := 0; i < p.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for dev := range tasks {
				results <- p.pollDevice(tb.TerminalServer, dev)
			}
		}()
	}

	go func() {
		for _, dev := range tb.Devices {
			tasks <- dev
		}
		close(tasks)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single-consumer merge: workers never touch the report map.
	report := &NetworkReport{
		GeneratedAt: start.UTC().Format(time.RFC3339),
		Devices:     make(map[string]*DeviceRecord, len(tb.Devices)),
	}
	for rec := range results {
		rec.State = StateMerged
		report.Devices[rec.Device] = rec
	}
	report.Duration = time.Since(start).Round(time.Millisecond).String()
	return report
}

func (p *Poller) pollDevice(proxy string, dev inventory.Device) *DeviceRecord {
	rec := &DeviceRecord{Device: dev.Name, State: StatePending}

	if dev.ProxyCommand == "" {
		p.log.Warn("%s: no proxied connection in testbed, skipping", dev.Name)
		rec.State = StateUnreachable
		rec.OverallHealth = score.Unreachable
		rec.Error = "No proxy connection configured"
		return rec
	}

	rec.State = StateConnecting
	p.log.Info("%s: connecting via %s", dev.Name, proxy)

	runner, err := p.open(session.Target{
		Device:       dev.Name,
		Proxy:        proxy,
		ProxyCommand: dev.ProxyCommand,
	})
	if err != nil {
		p.log.Error("%s: %v", dev.Name, err)
		rec.State = StateUnreachable
		rec.OverallHealth = score.Unreachable
		rec.Error = util.FirstLine(err.Error())
		return rec
	}
	defer runner.Close()

	rec.Reachable = true
	rec.State = StateCollecting

	outputs := make(map[string]string, len(Commands()))
	for _, cmd := range Commands() {
		out, err := runner.Run(cmd)
		if err != nil {
			// A dead channel mid-run: keep what we have, empty text
			// for the rest. Analyzers treat no data as no data.
			p.log.Warn("%s: %q failed: %v", dev.Name, cmd, err)
			rec.State = StatePartialError
			out = ""
		}
		outputs[cmd] = out
	}

	p.analyzeDevice(rec, outputs)
	if rec.State != StatePartialError {
		rec.State = StateAnalyzed
	}
	return rec
}

// analyzeDevice runs every analyzer in isolation and scores the device.
// A panicking analyzer leaves its verdict nil and marks the device
// PARTIAL_ERROR; the remaining components still run.
func (p *Poller) analyzeDevice(rec *DeviceRecord, outputs map[string]string) {
	p.isolate(rec, "interface", func() {
		v := p.analyzer.Interfaces(p.tiered(CmdInterfaceBrief, outputs))
		rec.InterfaceVerdict = &v
	})
	p.isolate(rec, "routing", func() {
		v := p.analyzer.Routing(p.tiered(CmdRoute, outputs))
		rec.RoutingVerdict = &v
	})
	p.isolate(rec, "cpu", func() {
		v := p.analyzer.CPU(p.tiered(CmdProcessesCPU, outputs))
		rec.CPUVerdict = &v
	})
	p.isolate(rec, "memory", func() {
		v := p.analyzer.Memory(p.tiered(CmdProcessMemory, outputs))
		rec.MemoryVerdict = &v
	})
	p.isolate(rec, "bgp_summary", func() {
		v := p.analyzer.BGPSummary(p.tiered(CmdBGPSummary, outputs))
		rec.BGPSummaryVerdict = &v
	})
	p.isolate(rec, "bgp_neighbors", func() {
		v := p.analyzer.BGPNeighbors(p.tiered(CmdBGPNeighbors, outputs))
		rec.BGPNeighborVerdict = &v
	})
	p.isolate(rec, "ospf_neighbors", func() {
		v := p.analyzer.OSPFNeighbors(p.tiered(CmdOSPFNeighbor, outputs))
		rec.OSPFNeighborVerdict = &v
	})
	p.isolate(rec, "ospf_database", func() {
		v := p.analyzer.OSPFDatabase(outputs[CmdOSPFDatabase])
		rec.OSPFDatabaseVerdict = &v
	})
	p.isolate(rec, "ospf_interfaces", func() {
		v := p.analyzer.OSPFInterfaces(p.tiered(CmdOSPFInterfaceBrief, outputs))
		rec.OSPFInterfaceVerdict = &v
	})

	rec.OverallHealth = score.Overall(p.components(rec))
}

// components maps verdicts to scorer inputs. Missing verdicts (from a
// panicked analyzer) read as their no-data value.
func (p *Poller) components(rec *DeviceRecord) score.Components {
	var c score.Components
	if rec.InterfaceVerdict != nil {
		c.Interface = rec.InterfaceVerdict.Status
	}
	if rec.CPUVerdict != nil {
		c.CPU = rec.CPUVerdict.Status
	}
	if rec.MemoryVerdict != nil {
		c.Memory = rec.MemoryVerdict.Status
	}
	if rec.BGPSummaryVerdict != nil {
		c.BGP = rec.BGPSummaryVerdict.Status
	}
	if rec.OSPFNeighborVerdict != nil {
		c.OSPF = rec.OSPFNeighborVerdict.Status
	}
	return c
}

// tiered runs the structured tier for a command and hands both tiers to
// the analyzer.
func (p *Poller) tiered(cmd string, outputs map[string]string) ([]parse.Record, string) {
	raw := outputs[cmd]
	structured, ok := parse.Structured(cmd, raw)
	if !ok {
		structured = nil
	}
	return structured, raw
}

func (p *Poller) isolate(rec *DeviceRecord, component string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("%s: %s analyzer panicked: %v", rec.Device, component, r)
			rec.State = StatePartialError
			rec.ComponentErrors = append(rec.ComponentErrors,
				fmt.Sprintf("%s: %v", component, r))
		}
	}()
	fn()
}
