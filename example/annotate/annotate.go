/*
Example code showing how to annotate an image with the attributes derived from
the inference tensors attached to its regions of interest.  The regions are
read from a JSON file, eg:

	[
	  {
	    "x": 120, "y": 80, "w": 160, "h": 160, "id": 3, "label": "face",
	    "tensors": [
	      {"model": "age-gender", "layer": "prob", "data": [0.1, 0.9]},
	      {"model": "age-gender", "layer": "age_conv3", "data": [0.37]},
	      {"model": "emotions", "layer": "prob_emotion", "data": [0.1, 0.6, 0.05, 0.05, 0.2]},
	      {"model": "head-pose", "layer": "angle_r_fc", "data": [4.5]},
	      {"model": "head-pose", "layer": "angle_p_fc", "data": [-10]},
	      {"model": "head-pose", "layer": "angle_y_fc", "data": [25]}
	    ]
	  }
	]
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cyclopcam/logs"
	"github.com/swdee/go-roiannotate"
	"github.com/swdee/go-roiannotate/annotate"
	"github.com/swdee/go-roiannotate/metadata"
	"github.com/swdee/go-roiannotate/render"
	"gocv.io/x/gocv"
)

// jsonTensor is a tensor as described in the ROI file
type jsonTensor struct {
	Model string    `json:"model"`
	Layer string    `json:"layer"`
	Data  []float32 `json:"data"`
}

// jsonROI is a region of interest as described in the ROI file
type jsonROI struct {
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	W       float64      `json:"w"`
	H       float64      `json:"h"`
	ID      int          `json:"id"`
	Label   string       `json:"label"`
	Tensors []jsonTensor `json:"tensors"`
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/face.jpg", "Image file to annotate")
	roiFile := flag.String("r", "../data/face-rois.json", "JSON file describing the regions of interest and their tensors")
	saveFile := flag.String("o", "../data/face-annotated.jpg", "The output JPG file with annotations")
	fontFile := flag.String("f", "", "Optional TrueType font file to render labels with")
	emotionFile := flag.String("e", "", "Optional emotion labels file, one label per line")
	labelSrc := flag.String("labels", "none", "Label carried in metadata records [none|roi|annotation]")

	flag.Parse()

	source, err := parseLabelSource(*labelSrc)

	if err != nil {
		log.Fatal(err)
	}

	rois, err := loadROIs(*roiFile)

	if err != nil {
		log.Fatal("Error loading regions: ", err)
	}

	params := annotate.DefaultParams()
	params.Emitter.Labels = source

	if *emotionFile != "" {
		params.Interpreter.EmotionLabels, err = roiannotate.LoadLabels(*emotionFile)

		if err != nil {
			log.Fatal("Error loading emotion labels: ", err)
		}
	}

	if *fontFile != "" {
		fontBytes, err := os.ReadFile(*fontFile)

		if err != nil {
			log.Fatal("Error reading font file: ", err)
		}

		params.Style.Font.TTF, err = render.NewTTFFace(fontBytes, 24)

		if err != nil {
			log.Fatal("Error loading font: ", err)
		}
	}

	appLog, err := logs.NewLog()

	if err != nil {
		log.Fatal("Error creating logger: ", err)
	}

	defer appLog.Close()

	annotator := annotate.NewAnnotator(params, appLog)
	defer annotator.Close()

	// load image
	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatal("Error reading image from: ", *imgFile)
	}

	defer img.Close()

	buf := roiannotate.NewMemoryBuffer(img.ToBytes())

	frame := &roiannotate.Frame{
		Width:  img.Cols(),
		Height: img.Rows(),
		Format: roiannotate.FormatBGR,
		Buffer: buf,
		ROIs:   rois,
	}

	start := time.Now()

	res, err := annotator.Process(frame)

	if err != nil {
		log.Fatal("Error annotating frame: ", err)
	}

	end := time.Now()

	for i, ann := range res.Annotations {
		fmt.Printf("%s @ (%.0f %.0f %.0f %.0f)\n", ann.Label, rois[i].Rect.X,
			rois[i].Rect.Y, rois[i].Rect.W, rois[i].Rect.H)
	}

	for _, rec := range res.Records {
		fmt.Println(rec.String())
	}

	for _, skip := range res.Skipped {
		log.Printf("Region %d not drawn: %v\n", skip.Index, skip.Err)
	}

	log.Printf("Annotation time=%s\n", end.Sub(start).String())

	out, err := gocv.NewMatFromBytes(frame.Height, frame.Width, gocv.MatTypeCV8UC3, buf.Bytes())

	if err != nil {
		log.Fatal("Error creating output image: ", err)
	}

	defer out.Close()

	// Save the result
	if ok := gocv.IMWrite(*saveFile, out); !ok {
		log.Fatal("Failed to save the image")
	}

	log.Printf("Saved annotated result to %s\n", *saveFile)
}

// parseLabelSource converts the -labels flag value to a LabelSource
func parseLabelSource(s string) (metadata.LabelSource, error) {
	switch s {
	case "none":
		return metadata.LabelNone, nil
	case "roi":
		return metadata.LabelROI, nil
	case "annotation":
		return metadata.LabelAnnotation, nil
	default:
		return metadata.LabelNone, fmt.Errorf("unknown label source %q", s)
	}
}

// loadROIs reads the regions of interest from a JSON file
func loadROIs(file string) ([]roiannotate.ROI, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	var in []jsonROI

	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	rois := make([]roiannotate.ROI, len(in))

	for i, r := range in {
		rois[i] = roiannotate.ROI{
			Rect:  roiannotate.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
			ID:    r.ID,
			Label: r.Label,
		}

		if r.ID == 0 {
			rois[i].ID = roiannotate.UntrackedID
		}

		for _, t := range r.Tensors {
			rois[i].Tensors = append(rois[i].Tensors,
				roiannotate.NewTensor(t.Model, t.Layer, t.Data))
		}
	}

	return rois, nil
}
